package farmaciaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func (c *FarmaciaClient) RegistrarEntradaEstoque(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error) {
	var mov domain.MovimentacaoEstoque
	if err := c.doRequest(ctx, http.MethodPost, "/api/estoque/entrada", nil, req, &mov); err != nil {
		return nil, err
	}
	return &mov, nil
}

func (c *FarmaciaClient) RegistrarSaidaEstoque(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error) {
	var mov domain.MovimentacaoEstoque
	if err := c.doRequest(ctx, http.MethodPost, "/api/estoque/saida", nil, req, &mov); err != nil {
		return nil, err
	}
	return &mov, nil
}

// BuscarHistoricoEstoque retorna o razão de um medicamento, mais recente
// primeiro. Limite zero deixa o padrão do backend valer.
func (c *FarmaciaClient) BuscarHistoricoEstoque(ctx context.Context, medicamentoID int64, limite int) ([]domain.MovimentacaoEstoque, error) {
	var query url.Values
	if limite > 0 {
		query = url.Values{}
		query.Set("limite", strconv.Itoa(limite))
	}

	var historico []domain.MovimentacaoEstoque
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/estoque/%d/historico", medicamentoID), query, nil, &historico); err != nil {
		return nil, err
	}
	return historico, nil
}
