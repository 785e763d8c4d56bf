package farmaciaclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func (c *FarmaciaClient) ListarCategorias(ctx context.Context) ([]domain.Categoria, error) {
	var categorias []domain.Categoria
	if err := c.doRequest(ctx, http.MethodGet, "/api/categorias", nil, nil, &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

func (c *FarmaciaClient) BuscarCategoria(ctx context.Context, id int64) (*domain.Categoria, error) {
	var categoria domain.Categoria
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/categorias/%d", id), nil, nil, &categoria); err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (c *FarmaciaClient) CriarCategoria(ctx context.Context, req *domain.CategoriaRequest) (*domain.Categoria, error) {
	var categoria domain.Categoria
	if err := c.doRequest(ctx, http.MethodPost, "/api/categorias", nil, req, &categoria); err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (c *FarmaciaClient) AtualizarCategoria(ctx context.Context, id int64, req *domain.CategoriaRequest) (*domain.Categoria, error) {
	var categoria domain.Categoria
	if err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/categorias/%d", id), nil, req, &categoria); err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (c *FarmaciaClient) ExcluirCategoria(ctx context.Context, id int64) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/categorias/%d", id), nil, nil, nil)
}
