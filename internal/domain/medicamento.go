package domain

type Medicamento struct {
	ID                int64     `json:"id"`
	Nome              string    `json:"nome"`
	Descricao         string    `json:"descricao,omitempty"`
	Categoria         Categoria `json:"categoria"`
	Preco             float64   `json:"preco"`
	QuantidadeEstoque int       `json:"quantidadeEstoque"`
	DataValidade      string    `json:"dataValidade"`
	Ativo             bool      `json:"ativo"`
	DataCriacao       string    `json:"dataCriacao,omitempty"`
	DataAtualizacao   string    `json:"dataAtualizacao,omitempty"`
}

type MedicamentoRequest struct {
	Nome        string  `json:"nome" validate:"required,min=2,max=200"`
	Descricao   string  `json:"descricao,omitempty" validate:"max=500"`
	CategoriaID int64   `json:"categoriaId" validate:"required,gt=0"`
	Preco       float64 `json:"preco" validate:"required,gt=0"`
	// No PUT, quantidadeEstoque é tratada pelo backend como uma ENTRADA adicional
	QuantidadeEstoque *int   `json:"quantidadeEstoque,omitempty" validate:"omitempty,gte=0"`
	DataValidade      string `json:"dataValidade" validate:"required,datetime=2006-01-02"`
	Ativo             *bool  `json:"ativo,omitempty"`
}
