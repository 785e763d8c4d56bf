// Package alerting expõe os alertas de estoque baixo e validade próxima do
// backend e mantém o último snapshot bem-sucedido de cada um, usado pelo
// dashboard quando o backend não responde.
package alerting

import (
	"context"
	"sync"
	"time"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

type Alerter interface {
	EstoqueBaixo(ctx context.Context, limite int) (*domain.AlertaEstoque, error)
	ValidadeProxima(ctx context.Context, dias int) (*domain.AlertaValidade, error)
	AtualizarSnapshots(ctx context.Context) error
	SnapshotEstoque() (*domain.AlertaEstoque, time.Time, bool)
	SnapshotValidade() (*domain.AlertaValidade, time.Time, bool)
}

type Service struct {
	farmacia farmaciaclient.Client
	cfg      *config.Config

	mu               sync.RWMutex
	estoqueSnapshot  *domain.AlertaEstoque
	estoqueEm        time.Time
	validadeSnapshot *domain.AlertaValidade
	validadeEm       time.Time
}

func NewService(farmacia farmaciaclient.Client, cfg *config.Config) Alerter {
	return &Service{
		farmacia: farmacia,
		cfg:      cfg,
	}
}

// EstoqueBaixo consulta o alerta com o limite pedido (ou o padrão) e, quando a
// consulta usa o limite padrão, aproveita o resultado como snapshot.
func (s *Service) EstoqueBaixo(ctx context.Context, limite int) (*domain.AlertaEstoque, error) {
	padrao := limite <= 0
	if padrao {
		limite = s.cfg.Alertas.EstoqueLimitePadrao
	}

	alerta, err := s.farmacia.AlertaEstoqueBaixo(ctx, limite)
	if err != nil {
		return nil, err
	}

	if padrao {
		s.mu.Lock()
		s.estoqueSnapshot = alerta
		s.estoqueEm = time.Now().UTC()
		s.mu.Unlock()
	}

	return alerta, nil
}

func (s *Service) ValidadeProxima(ctx context.Context, dias int) (*domain.AlertaValidade, error) {
	padrao := dias <= 0
	if padrao {
		dias = s.cfg.Alertas.ValidadeDiasPadrao
	}

	alerta, err := s.farmacia.AlertaValidadeProxima(ctx, dias)
	if err != nil {
		return nil, err
	}

	if padrao {
		s.mu.Lock()
		s.validadeSnapshot = alerta
		s.validadeEm = time.Now().UTC()
		s.mu.Unlock()
	}

	return alerta, nil
}

// AtualizarSnapshots renova os dois snapshots com os limites padrão. É o
// agendador quem chama, com as credenciais de serviço no contexto.
func (s *Service) AtualizarSnapshots(ctx context.Context) error {
	if _, err := s.EstoqueBaixo(ctx, 0); err != nil {
		return err
	}
	if _, err := s.ValidadeProxima(ctx, 0); err != nil {
		return err
	}
	return nil
}

func (s *Service) SnapshotEstoque() (*domain.AlertaEstoque, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.estoqueSnapshot, s.estoqueEm, s.estoqueSnapshot != nil
}

func (s *Service) SnapshotValidade() (*domain.AlertaValidade, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validadeSnapshot, s.validadeEm, s.validadeSnapshot != nil
}
