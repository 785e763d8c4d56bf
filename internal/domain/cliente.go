package domain

type Cliente struct {
	ID              int64  `json:"id"`
	Nome            string `json:"nome"`
	CPF             string `json:"cpf"`
	Email           string `json:"email"`
	DataNascimento  string `json:"dataNascimento"`
	DataCriacao     string `json:"dataCriacao,omitempty"`
	DataAtualizacao string `json:"dataAtualizacao,omitempty"`
}

// ClienteRequest é o corpo de criação/atualização de cliente. O CPF pode chegar
// mascarado (NNN.NNN.NNN-NN); o serviço normaliza antes de enviar ao backend.
// As datas usam o formato YYYY-MM-DD.
type ClienteRequest struct {
	Nome           string `json:"nome" validate:"required,min=3,max=200"`
	CPF            string `json:"cpf" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	DataNascimento string `json:"dataNascimento" validate:"required,datetime=2006-01-02"`
}

// ClienteResumo é a projeção de cliente embutida nas vendas.
type ClienteResumo struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}
