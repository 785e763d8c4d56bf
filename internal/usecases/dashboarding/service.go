// Package dashboarding monta a visão de abertura do sistema: as contagens dos
// quatro cadastros e os dois cartões de alerta, tudo buscado em paralelo. Cada
// bloco degrada por conta própria; o dashboard nunca falha inteiro por causa
// de um cartão.
package dashboarding

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/alerting"
)

type Dashboarder interface {
	Resumo(ctx context.Context) (*domain.DashboardResumo, error)
}

type Service struct {
	farmacia farmaciaclient.Client
	alerter  alerting.Alerter
}

func NewService(farmacia farmaciaclient.Client, alerter alerting.Alerter) Dashboarder {
	return &Service{
		farmacia: farmacia,
		alerter:  alerter,
	}
}

// Resumo dispara as três frentes em paralelo: estatísticas, cartão de estoque
// baixo e cartão de validade próxima.
//
// As estatísticas são tudo-ou-nada: qualquer contagem que falhe derruba o
// bloco inteiro para indisponível, porque números parciais enganam. Os
// cartões degradam um a um, caindo para o último snapshot quando existir.
func (s *Service) Resumo(ctx context.Context) (*domain.DashboardResumo, error) {
	resumo := &domain.DashboardResumo{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()

		estatisticas, err := s.contarCadastros(ctx)
		if err != nil {
			logrus.Warnf("Estatísticas do dashboard indisponíveis: %v", err)
			resumo.EstatisticasIndisponivel = true
			return
		}
		resumo.Estatisticas = estatisticas
	}()

	go func() {
		defer wg.Done()

		alerta, err := s.alerter.EstoqueBaixo(ctx, 0)
		if err == nil {
			resumo.EstoqueBaixo.Alerta = alerta
			return
		}

		logrus.Warnf("Cartão de estoque baixo indisponível: %v", err)
		if snapshot, _, ok := s.alerter.SnapshotEstoque(); ok {
			resumo.EstoqueBaixo.Alerta = snapshot
			resumo.EstoqueBaixo.Snapshot = true
			return
		}
		resumo.EstoqueBaixo.Indisponivel = true
	}()

	go func() {
		defer wg.Done()

		alerta, err := s.alerter.ValidadeProxima(ctx, 0)
		if err == nil {
			resumo.ValidadeProxima.Alerta = alerta
			return
		}

		logrus.Warnf("Cartão de validade próxima indisponível: %v", err)
		if snapshot, _, ok := s.alerter.SnapshotValidade(); ok {
			resumo.ValidadeProxima.Alerta = snapshot
			resumo.ValidadeProxima.Snapshot = true
			return
		}
		resumo.ValidadeProxima.Indisponivel = true
	}()

	wg.Wait()

	return resumo, nil
}

// contarCadastros dispara as quatro listagens em paralelo e conta os
// resultados. O backend não expõe endpoints de contagem.
func (s *Service) contarCadastros(ctx context.Context) (*domain.DashboardEstatisticas, error) {
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		firstErr     error
		estatisticas domain.DashboardEstatisticas
	)

	record := func(err error) {
		mu.Lock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		categorias, err := s.farmacia.ListarCategorias(ctx)
		record(err)
		estatisticas.Categorias = len(categorias)
	}()

	go func() {
		defer wg.Done()
		clientes, err := s.farmacia.ListarClientes(ctx)
		record(err)
		estatisticas.Clientes = len(clientes)
	}()

	go func() {
		defer wg.Done()
		medicamentos, err := s.farmacia.ListarMedicamentos(ctx)
		record(err)
		estatisticas.Medicamentos = len(medicamentos)
	}()

	go func() {
		defer wg.Done()
		vendas, err := s.farmacia.ListarVendas(ctx)
		record(err)
		estatisticas.Vendas = len(vendas)
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &estatisticas, nil
}
