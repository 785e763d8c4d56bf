// Package stocking cobre o livro-razão de estoque: registro de entradas e
// saídas, o histórico por medicamento e o agregado recente que abre a tela de
// movimentações.
package stocking

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/validating"
)

type Stocker interface {
	RegistrarEntrada(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error)
	RegistrarSaida(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error)
	Historico(ctx context.Context, medicamentoID int64, limite int) ([]domain.MovimentacaoEstoque, error)
	HistoricoAgregado(ctx context.Context) ([]domain.MovimentacaoEstoque, error)
}

type Service struct {
	farmacia  farmaciaclient.Client
	validator *validating.Validator
	cfg       *config.Config
}

func NewService(farmacia farmaciaclient.Client, validator *validating.Validator, cfg *config.Config) Stocker {
	return &Service{
		farmacia:  farmacia,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *Service) RegistrarEntrada(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}
	return s.farmacia.RegistrarEntradaEstoque(ctx, req)
}

// RegistrarSaida repassa a saída; estoque insuficiente é regra do backend e a
// rejeição dele volta como conflito com a mensagem original.
func (s *Service) RegistrarSaida(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}
	return s.farmacia.RegistrarSaidaEstoque(ctx, req)
}

func (s *Service) Historico(ctx context.Context, medicamentoID int64, limite int) ([]domain.MovimentacaoEstoque, error) {
	if limite <= 0 {
		limite = s.cfg.Historico.LimitePorMed
	}
	return s.farmacia.BuscarHistoricoEstoque(ctx, medicamentoID, limite)
}

// HistoricoAgregado monta a visão de abertura da tela de movimentações: as
// últimas movimentações de até MaxMedicamentos medicamentos, buscadas em
// paralelo e fundidas em ordem decrescente de data. Medicamento cujo
// histórico falhou contribui com nada; a tela abre com o que veio.
func (s *Service) HistoricoAgregado(ctx context.Context) ([]domain.MovimentacaoEstoque, error) {
	medicamentos, err := s.farmacia.ListarMedicamentos(ctx)
	if err != nil {
		return nil, err
	}

	if len(medicamentos) > s.cfg.Historico.MaxMedicamentos {
		medicamentos = medicamentos[:s.cfg.Historico.MaxMedicamentos]
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		historico []domain.MovimentacaoEstoque
	)

	for _, med := range medicamentos {
		wg.Add(1)
		go func(med domain.Medicamento) {
			defer wg.Done()

			movs, err := s.farmacia.BuscarHistoricoEstoque(ctx, med.ID, s.cfg.Historico.LimitePorMed)
			if err != nil {
				logrus.Warnf("Erro ao buscar histórico do medicamento %d (%s): %v", med.ID, med.Nome, err)
				return
			}

			mu.Lock()
			historico = append(historico, movs...)
			mu.Unlock()
		}(med)
	}
	wg.Wait()

	// Datas do backend são ISO-8601, então a ordem lexicográfica é a
	// cronológica.
	sort.SliceStable(historico, func(i, j int) bool {
		return historico[i].DataMovimentacao > historico[j].DataMovimentacao
	})

	return historico, nil
}
