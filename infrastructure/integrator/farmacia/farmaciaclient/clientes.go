package farmaciaclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func (c *FarmaciaClient) ListarClientes(ctx context.Context) ([]domain.Cliente, error) {
	var clientes []domain.Cliente
	if err := c.doRequest(ctx, http.MethodGet, "/api/clientes", nil, nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (c *FarmaciaClient) BuscarCliente(ctx context.Context, id int64) (*domain.Cliente, error) {
	var cliente domain.Cliente
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/clientes/%d", id), nil, nil, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (c *FarmaciaClient) CriarCliente(ctx context.Context, req *domain.ClienteRequest) (*domain.Cliente, error) {
	var cliente domain.Cliente
	if err := c.doRequest(ctx, http.MethodPost, "/api/clientes", nil, req, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// AtualizarCliente cobre o cadastro todo: o backend não expõe DELETE de
// cliente, apenas criação e atualização estão disponíveis.
func (c *FarmaciaClient) AtualizarCliente(ctx context.Context, id int64, req *domain.ClienteRequest) (*domain.Cliente, error) {
	var cliente domain.Cliente
	if err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/clientes/%d", id), nil, req, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}
