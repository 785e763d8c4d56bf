package farmaciaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func (c *FarmaciaClient) AlertaEstoqueBaixo(ctx context.Context, limite int) (*domain.AlertaEstoque, error) {
	var query url.Values
	if limite > 0 {
		query = url.Values{}
		query.Set("limite", strconv.Itoa(limite))
	}

	var alerta domain.AlertaEstoque
	if err := c.doRequest(ctx, http.MethodGet, "/api/alertas/estoque-baixo", query, nil, &alerta); err != nil {
		return nil, err
	}
	return &alerta, nil
}

func (c *FarmaciaClient) AlertaValidadeProxima(ctx context.Context, dias int) (*domain.AlertaValidade, error) {
	var query url.Values
	if dias > 0 {
		query = url.Values{}
		query.Set("dias", strconv.Itoa(dias))
	}

	var alerta domain.AlertaValidade
	if err := c.doRequest(ctx, http.MethodGet, "/api/alertas/validade-proxima", query, nil, &alerta); err != nil {
		return nil, err
	}
	return &alerta, nil
}
