package farmaciaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

func (c *FarmaciaClient) ListarMedicamentos(ctx context.Context) ([]domain.Medicamento, error) {
	var medicamentos []domain.Medicamento
	if err := c.doRequest(ctx, http.MethodGet, "/api/medicamentos", nil, nil, &medicamentos); err != nil {
		return nil, err
	}
	return medicamentos, nil
}

func (c *FarmaciaClient) BuscarMedicamento(ctx context.Context, id int64) (*domain.Medicamento, error) {
	var medicamento domain.Medicamento
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/medicamentos/%d", id), nil, nil, &medicamento); err != nil {
		return nil, err
	}
	return &medicamento, nil
}

func (c *FarmaciaClient) CriarMedicamento(ctx context.Context, req *domain.MedicamentoRequest) (*domain.Medicamento, error) {
	var medicamento domain.Medicamento
	if err := c.doRequest(ctx, http.MethodPost, "/api/medicamentos", nil, req, &medicamento); err != nil {
		return nil, err
	}
	return &medicamento, nil
}

func (c *FarmaciaClient) AtualizarMedicamento(ctx context.Context, id int64, req *domain.MedicamentoRequest) (*domain.Medicamento, error) {
	var medicamento domain.Medicamento
	if err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/medicamentos/%d", id), nil, req, &medicamento); err != nil {
		return nil, err
	}
	return &medicamento, nil
}

func (c *FarmaciaClient) ExcluirMedicamento(ctx context.Context, id int64) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/medicamentos/%d", id), nil, nil, nil)
}

// AtualizarStatusMedicamento alterna a flag de ativo via PATCH com query param.
func (c *FarmaciaClient) AtualizarStatusMedicamento(ctx context.Context, id int64, ativo bool) error {
	query := url.Values{}
	query.Set("ativo", strconv.FormatBool(ativo))
	return c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/medicamentos/%d/status", id), query, nil, nil)
}
