package farmaciaclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func (c *FarmaciaClient) ListarVendas(ctx context.Context) ([]domain.Venda, error) {
	var vendas []domain.Venda
	if err := c.doRequest(ctx, http.MethodGet, "/api/vendas", nil, nil, &vendas); err != nil {
		return nil, err
	}
	return vendas, nil
}

func (c *FarmaciaClient) BuscarVenda(ctx context.Context, id int64) (*domain.Venda, error) {
	var venda domain.Venda
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/vendas/%d", id), nil, nil, &venda); err != nil {
		return nil, err
	}
	return &venda, nil
}

func (c *FarmaciaClient) BuscarVendasPorCliente(ctx context.Context, clienteID int64) ([]domain.Venda, error) {
	var vendas []domain.Venda
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/vendas/cliente/%d", clienteID), nil, nil, &vendas); err != nil {
		return nil, err
	}
	return vendas, nil
}

// CriarVenda submete a venda completa; o backend valida estoque, itens
// duplicados e cliente e cria tudo atomicamente.
func (c *FarmaciaClient) CriarVenda(ctx context.Context, req *domain.VendaRequest) (*domain.Venda, error) {
	var venda domain.Venda
	if err := c.doRequest(ctx, http.MethodPost, "/api/vendas", nil, req, &venda); err != nil {
		return nil, err
	}
	return &venda, nil
}
