package domain

// DashboardEstatisticas agrega as contagens dos quatro cadastros principais.
type DashboardEstatisticas struct {
	Categorias   int `json:"categorias"`
	Clientes     int `json:"clientes"`
	Medicamentos int `json:"medicamentos"`
	Vendas       int `json:"vendas"`
}

// CardAlertaEstoque é o cartão de estoque baixo do dashboard. Quando a consulta
// ao backend falha o cartão degrada para indisponível (ou para o último
// snapshot do agendador, quando existir) sem derrubar o restante do dashboard.
type CardAlertaEstoque struct {
	Indisponivel bool           `json:"indisponivel"`
	Snapshot     bool           `json:"snapshot,omitempty"`
	Alerta       *AlertaEstoque `json:"alerta,omitempty"`
}

type CardAlertaValidade struct {
	Indisponivel bool            `json:"indisponivel"`
	Snapshot     bool            `json:"snapshot,omitempty"`
	Alerta       *AlertaValidade `json:"alerta,omitempty"`
}

type DashboardResumo struct {
	Estatisticas             *DashboardEstatisticas `json:"estatisticas,omitempty"`
	EstatisticasIndisponivel bool                   `json:"estatisticasIndisponivel"`
	EstoqueBaixo             CardAlertaEstoque      `json:"estoqueBaixo"`
	ValidadeProxima          CardAlertaValidade     `json:"validadeProxima"`
}
