package domain

// Tipos de movimentação do livro-razão de estoque do backend.
const (
	TipoMovimentacaoEntrada = "ENTRADA"
	TipoMovimentacaoSaida   = "SAIDA"
)

type MovimentacaoEstoqueRequest struct {
	MedicamentoID int64  `json:"medicamentoId" validate:"required,gt=0"`
	Quantidade    int    `json:"quantidade" validate:"required,gte=1"`
	Motivo        string `json:"motivo" validate:"required,max=255"`
}

// MovimentacaoEstoque é uma entrada do razão, com saldos calculados pelo backend.
type MovimentacaoEstoque struct {
	ID               int64  `json:"id"`
	MedicamentoID    int64  `json:"medicamentoId"`
	MedicamentoNome  string `json:"medicamentoNome"`
	Tipo             string `json:"tipo"`
	Quantidade       int    `json:"quantidade"`
	Motivo           string `json:"motivo"`
	DataMovimentacao string `json:"dataMovimentacao"`
	SaldoAnterior    int    `json:"saldoAnterior"`
	SaldoAtual       int    `json:"saldoAtual"`
}
