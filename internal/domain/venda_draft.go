package domain

import "time"

// VendaDraftItem é uma linha do rascunho. MedicamentoID zero significa linha
// ainda sem medicamento escolhido.
type VendaDraftItem struct {
	MedicamentoID int64 `json:"medicamentoId"`
	Quantidade    int   `json:"quantidade"`
}

// VendaDraft é o rascunho de venda mantido pelo servidor enquanto o usuário
// monta os itens. O backend só é acionado na submissão.
type VendaDraft struct {
	ID           string           `json:"id"`
	SessionID    string           `json:"-"`
	ClienteID    int64            `json:"clienteId"`
	Itens        []VendaDraftItem `json:"itens"`
	CriadoEm     time.Time        `json:"criadoEm"`
	AtualizadoEm time.Time        `json:"atualizadoEm"`
}

// ItemVendaDraftResumo é uma linha do rascunho enriquecida com os dados do
// medicamento conhecidos no momento da consulta.
type ItemVendaDraftResumo struct {
	MedicamentoID     int64   `json:"medicamentoId"`
	MedicamentoNome   string  `json:"medicamentoNome,omitempty"`
	Quantidade        int     `json:"quantidade"`
	PrecoUnitario     float64 `json:"precoUnitario"`
	Subtotal          float64 `json:"subtotal"`
	EstoqueDisponivel int     `json:"estoqueDisponivel"`
}

// VendaDraftResumo é a visão derivada do rascunho: total recalculado do zero a
// cada consulta e o sinal de prontidão para submissão.
type VendaDraftResumo struct {
	ID          string                 `json:"id"`
	ClienteID   int64                  `json:"clienteId"`
	Itens       []ItemVendaDraftResumo `json:"itens"`
	ValorTotal  float64                `json:"valorTotal"`
	PodeEnviar  bool                   `json:"podeEnviar"`
	Impedimento string                 `json:"impedimento,omitempty"`
}
