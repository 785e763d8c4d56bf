package domain

type ItemVendaRequest struct {
	MedicamentoID int64 `json:"medicamentoId" validate:"required,gt=0"`
	Quantidade    int   `json:"quantidade" validate:"required,gte=1"`
}

type VendaRequest struct {
	ClienteID int64              `json:"clienteId" validate:"required,gt=0"`
	Itens     []ItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
}

type ItemVendaResumo struct {
	MedicamentoID   int64   `json:"medicamentoId"`
	MedicamentoNome string  `json:"medicamentoNome"`
	Quantidade      int     `json:"quantidade"`
	PrecoUnitario   float64 `json:"precoUnitario"`
	Subtotal        float64 `json:"subtotal"`
}

// Venda é criada atomicamente pelo backend a partir da lista de itens.
type Venda struct {
	ID         int64             `json:"id"`
	DataVenda  string            `json:"dataVenda"`
	ValorTotal float64           `json:"valorTotal"`
	Cliente    ClienteResumo     `json:"cliente"`
	Itens      []ItemVendaResumo `json:"itens"`
}
