package domain

// Alertas são modelos de leitura derivados pelo backend; nada é persistido aqui.

type AlertaEstoqueItem struct {
	ID                int64  `json:"id"`
	Nome              string `json:"nome"`
	Categoria         string `json:"categoria"`
	QuantidadeEstoque int    `json:"quantidadeEstoque"`
}

type AlertaEstoque struct {
	LimiteUtilizado int                 `json:"limiteUtilizado"`
	Quantidade      int                 `json:"quantidade"`
	Medicamentos    []AlertaEstoqueItem `json:"medicamentos"`
}

type AlertaValidadeItem struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Categoria    string `json:"categoria"`
	DataValidade string `json:"dataValidade"`
}

type AlertaValidade struct {
	DiasUtilizados int                  `json:"diasUtilizados"`
	Quantidade     int                  `json:"quantidade"`
	Medicamentos   []AlertaValidadeItem `json:"medicamentos"`
}
