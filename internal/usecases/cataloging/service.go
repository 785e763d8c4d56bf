// Package cataloging orquestra o catálogo da farmácia: categorias e
// medicamentos. As operações de escrita passam pela validação antecipada e
// seguem para o backend, que mantém a palavra final.
package cataloging

import (
	"context"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/picking"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/validating"
)

const maxSugestoes = 10

type Cataloger interface {
	ListarCategorias(ctx context.Context) ([]domain.Categoria, error)
	BuscarCategoria(ctx context.Context, id int64) (*domain.Categoria, error)
	CriarCategoria(ctx context.Context, req *domain.CategoriaRequest) (*domain.Categoria, error)
	AtualizarCategoria(ctx context.Context, id int64, req *domain.CategoriaRequest) (*domain.Categoria, error)
	ExcluirCategoria(ctx context.Context, id int64) error

	ListarMedicamentos(ctx context.Context) ([]domain.Medicamento, error)
	BuscarMedicamento(ctx context.Context, id int64) (*domain.Medicamento, error)
	CriarMedicamento(ctx context.Context, req *domain.MedicamentoRequest) (*domain.Medicamento, error)
	AtualizarMedicamento(ctx context.Context, id int64, req *domain.MedicamentoRequest) (*domain.Medicamento, error)
	ExcluirMedicamento(ctx context.Context, id int64) error
	AlternarStatusMedicamento(ctx context.Context, id int64, ativo bool) error
	SugerirMedicamentos(ctx context.Context, query string, somenteAtivos bool) ([]domain.Medicamento, error)
}

type Service struct {
	farmacia  farmaciaclient.Client
	validator *validating.Validator
}

func NewService(farmacia farmaciaclient.Client, validator *validating.Validator) Cataloger {
	return &Service{
		farmacia:  farmacia,
		validator: validator,
	}
}

func (s *Service) ListarCategorias(ctx context.Context) ([]domain.Categoria, error) {
	return s.farmacia.ListarCategorias(ctx)
}

func (s *Service) BuscarCategoria(ctx context.Context, id int64) (*domain.Categoria, error) {
	return s.farmacia.BuscarCategoria(ctx, id)
}

func (s *Service) CriarCategoria(ctx context.Context, req *domain.CategoriaRequest) (*domain.Categoria, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}
	return s.farmacia.CriarCategoria(ctx, req)
}

func (s *Service) AtualizarCategoria(ctx context.Context, id int64, req *domain.CategoriaRequest) (*domain.Categoria, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}
	return s.farmacia.AtualizarCategoria(ctx, id, req)
}

// ExcluirCategoria repassa a exclusão; categoria com medicamentos vinculados
// é rejeitada pelo backend e a mensagem dele volta textualmente.
func (s *Service) ExcluirCategoria(ctx context.Context, id int64) error {
	return s.farmacia.ExcluirCategoria(ctx, id)
}

func (s *Service) ListarMedicamentos(ctx context.Context) ([]domain.Medicamento, error) {
	return s.farmacia.ListarMedicamentos(ctx)
}

func (s *Service) BuscarMedicamento(ctx context.Context, id int64) (*domain.Medicamento, error) {
	return s.farmacia.BuscarMedicamento(ctx, id)
}

func (s *Service) CriarMedicamento(ctx context.Context, req *domain.MedicamentoRequest) (*domain.Medicamento, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}
	return s.farmacia.CriarMedicamento(ctx, req)
}

func (s *Service) AtualizarMedicamento(ctx context.Context, id int64, req *domain.MedicamentoRequest) (*domain.Medicamento, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}
	return s.farmacia.AtualizarMedicamento(ctx, id, req)
}

func (s *Service) ExcluirMedicamento(ctx context.Context, id int64) error {
	return s.farmacia.ExcluirMedicamento(ctx, id)
}

func (s *Service) AlternarStatusMedicamento(ctx context.Context, id int64, ativo bool) error {
	return s.farmacia.AtualizarStatusMedicamento(ctx, id, ativo)
}

// SugerirMedicamentos casa o texto contra o nome dos medicamentos. As telas
// de venda e estoque pedem somenteAtivos; a de catálogo busca sobre todos.
func (s *Service) SugerirMedicamentos(ctx context.Context, query string, somenteAtivos bool) ([]domain.Medicamento, error) {
	medicamentos, err := s.farmacia.ListarMedicamentos(ctx)
	if err != nil {
		return nil, err
	}

	picker := picking.NewPicker(
		func(med domain.Medicamento, q string) bool {
			if somenteAtivos && !med.Ativo {
				return false
			}
			return picking.ContainsFold(med.Nome, q)
		},
		func(med domain.Medicamento) string { return med.Nome },
		picking.Options{Limit: maxSugestoes},
	)
	picker.SetItems(medicamentos)
	picker.Type(query)

	return picker.Suggestions(), nil
}
