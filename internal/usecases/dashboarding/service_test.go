package dashboarding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	farmaciamocks "github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/mocks"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/alerting"
)

func newTestService(t *testing.T) (*Service, *farmaciamocks.MockClient, alerting.Alerter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	farmacia := farmaciamocks.NewMockClient(ctrl)
	alerter := alerting.NewService(farmacia, &config.Config{
		Alertas: config.Alertas{
			EstoqueLimitePadrao: 10,
			ValidadeDiasPadrao:  30,
		},
	})

	service := &Service{
		farmacia: farmacia,
		alerter:  alerter,
	}

	return service, farmacia, alerter
}

func expectContagens(farmacia *farmaciamocks.MockClient) {
	farmacia.EXPECT().
		ListarCategorias(gomock.Any()).
		Return([]domain.Categoria{{ID: 1}, {ID: 2}}, nil)
	farmacia.EXPECT().
		ListarClientes(gomock.Any()).
		Return([]domain.Cliente{{ID: 1}}, nil)
	farmacia.EXPECT().
		ListarMedicamentos(gomock.Any()).
		Return([]domain.Medicamento{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	farmacia.EXPECT().
		ListarVendas(gomock.Any()).
		Return([]domain.Venda{}, nil)
}

func TestService_Resumo(t *testing.T) {
	t.Run("Backend saudável - estatísticas e cartões preenchidos", func(t *testing.T) {
		service, farmacia, _ := newTestService(t)

		expectContagens(farmacia)

		farmacia.EXPECT().
			AlertaEstoqueBaixo(gomock.Any(), 10).
			Return(&domain.AlertaEstoque{LimiteUtilizado: 10, Quantidade: 2}, nil)
		farmacia.EXPECT().
			AlertaValidadeProxima(gomock.Any(), 30).
			Return(&domain.AlertaValidade{DiasUtilizados: 30, Quantidade: 1}, nil)

		resumo, err := service.Resumo(context.Background())

		assert.NoError(t, err)
		assert.False(t, resumo.EstatisticasIndisponivel)
		assert.Equal(t, 2, resumo.Estatisticas.Categorias)
		assert.Equal(t, 1, resumo.Estatisticas.Clientes)
		assert.Equal(t, 3, resumo.Estatisticas.Medicamentos)
		assert.Equal(t, 0, resumo.Estatisticas.Vendas)

		assert.False(t, resumo.EstoqueBaixo.Indisponivel)
		assert.Equal(t, 2, resumo.EstoqueBaixo.Alerta.Quantidade)
		assert.False(t, resumo.ValidadeProxima.Indisponivel)
	})

	t.Run("Uma contagem falha - o bloco de estatísticas inteiro degrada", func(t *testing.T) {
		service, farmacia, _ := newTestService(t)

		farmacia.EXPECT().
			ListarCategorias(gomock.Any()).
			Return([]domain.Categoria{{ID: 1}}, nil)
		farmacia.EXPECT().
			ListarClientes(gomock.Any()).
			Return(nil, assert.AnError)
		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return([]domain.Medicamento{{ID: 1}}, nil)
		farmacia.EXPECT().
			ListarVendas(gomock.Any()).
			Return([]domain.Venda{}, nil)

		farmacia.EXPECT().
			AlertaEstoqueBaixo(gomock.Any(), 10).
			Return(&domain.AlertaEstoque{}, nil)
		farmacia.EXPECT().
			AlertaValidadeProxima(gomock.Any(), 30).
			Return(&domain.AlertaValidade{}, nil)

		resumo, err := service.Resumo(context.Background())

		assert.NoError(t, err)
		assert.True(t, resumo.EstatisticasIndisponivel)
		assert.Nil(t, resumo.Estatisticas)

		// Os cartões não são arrastados pela falha das estatísticas
		assert.False(t, resumo.EstoqueBaixo.Indisponivel)
		assert.False(t, resumo.ValidadeProxima.Indisponivel)
	})

	t.Run("Cartão sem snapshot degrada para indisponível", func(t *testing.T) {
		service, farmacia, _ := newTestService(t)

		expectContagens(farmacia)

		farmacia.EXPECT().
			AlertaEstoqueBaixo(gomock.Any(), 10).
			Return(nil, assert.AnError)
		farmacia.EXPECT().
			AlertaValidadeProxima(gomock.Any(), 30).
			Return(&domain.AlertaValidade{Quantidade: 1}, nil)

		resumo, err := service.Resumo(context.Background())

		assert.NoError(t, err)
		assert.True(t, resumo.EstoqueBaixo.Indisponivel)
		assert.Nil(t, resumo.EstoqueBaixo.Alerta)

		assert.False(t, resumo.ValidadeProxima.Indisponivel)
		assert.Equal(t, 1, resumo.ValidadeProxima.Alerta.Quantidade)
	})

	t.Run("Cartão com snapshot anterior cai para o snapshot", func(t *testing.T) {
		service, farmacia, alerter := newTestService(t)

		// Primeira consulta bem-sucedida alimenta o snapshot
		farmacia.EXPECT().
			AlertaEstoqueBaixo(gomock.Any(), 10).
			Return(&domain.AlertaEstoque{LimiteUtilizado: 10, Quantidade: 4}, nil)
		_, err := alerter.EstoqueBaixo(context.Background(), 0)
		assert.NoError(t, err)

		expectContagens(farmacia)

		farmacia.EXPECT().
			AlertaEstoqueBaixo(gomock.Any(), 10).
			Return(nil, assert.AnError)
		farmacia.EXPECT().
			AlertaValidadeProxima(gomock.Any(), 30).
			Return(&domain.AlertaValidade{}, nil)

		resumo, err := service.Resumo(context.Background())

		assert.NoError(t, err)
		assert.False(t, resumo.EstoqueBaixo.Indisponivel)
		assert.True(t, resumo.EstoqueBaixo.Snapshot)
		assert.Equal(t, 4, resumo.EstoqueBaixo.Alerta.Quantidade)
	})
}
