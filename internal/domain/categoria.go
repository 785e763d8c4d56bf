package domain

// Categoria espelha o recurso /api/categorias do backend da farmácia.
type Categoria struct {
	ID              int64  `json:"id"`
	Nome            string `json:"nome"`
	Descricao       string `json:"descricao,omitempty"`
	DataCriacao     string `json:"dataCriacao,omitempty"`
	DataAtualizacao string `json:"dataAtualizacao,omitempty"`
}

type CategoriaRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=100"`
	Descricao string `json:"descricao,omitempty" validate:"max=500"`
}
