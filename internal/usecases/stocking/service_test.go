package stocking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	farmaciamocks "github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/mocks"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/validating"
)

func newTestService(t *testing.T) (*Service, *farmaciamocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	farmacia := farmaciamocks.NewMockClient(ctrl)
	service := &Service{
		farmacia:  farmacia,
		validator: validating.New(),
		cfg: &config.Config{
			Historico: config.Historico{
				MaxMedicamentos: 3,
				LimitePorMed:    10,
			},
		},
	}

	return service, farmacia
}

func TestService_RegistrarEntrada(t *testing.T) {
	t.Run("Movimentação válida - deve repassar ao backend", func(t *testing.T) {
		service, farmacia := newTestService(t)

		req := &domain.MovimentacaoEstoqueRequest{
			MedicamentoID: 10,
			Quantidade:    5,
			Motivo:        "Reposição de fornecedor",
		}

		farmacia.EXPECT().
			RegistrarEntradaEstoque(gomock.Any(), req).
			Return(&domain.MovimentacaoEstoque{
				ID:            1,
				Tipo:          domain.TipoMovimentacaoEntrada,
				SaldoAnterior: 10,
				SaldoAtual:    15,
			}, nil)

		mov, err := service.RegistrarEntrada(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 15, mov.SaldoAtual)
	})

	t.Run("Sem motivo - deve reprovar sem chamar o backend", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.RegistrarEntrada(context.Background(), &domain.MovimentacaoEstoqueRequest{
			MedicamentoID: 10,
			Quantidade:    5,
		})

		var vErr *validating.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "Motivo")
	})

	t.Run("Quantidade zero - deve reprovar", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.RegistrarEntrada(context.Background(), &domain.MovimentacaoEstoqueRequest{
			MedicamentoID: 10,
			Motivo:        "Ajuste",
		})

		var vErr *validating.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "Quantidade")
	})
}

func TestService_HistoricoAgregado(t *testing.T) {
	medicamentos := []domain.Medicamento{
		{ID: 1, Nome: "Dipirona"},
		{ID: 2, Nome: "Paracetamol"},
	}

	t.Run("Funde os históricos em ordem decrescente de data", func(t *testing.T) {
		service, farmacia := newTestService(t)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		farmacia.EXPECT().
			BuscarHistoricoEstoque(gomock.Any(), int64(1), 10).
			Return([]domain.MovimentacaoEstoque{
				{ID: 11, MedicamentoID: 1, DataMovimentacao: "2026-08-30T10:00:00"},
				{ID: 12, MedicamentoID: 1, DataMovimentacao: "2026-08-28T09:00:00"},
			}, nil)

		farmacia.EXPECT().
			BuscarHistoricoEstoque(gomock.Any(), int64(2), 10).
			Return([]domain.MovimentacaoEstoque{
				{ID: 21, MedicamentoID: 2, DataMovimentacao: "2026-08-29T15:00:00"},
			}, nil)

		historico, err := service.HistoricoAgregado(context.Background())

		assert.NoError(t, err)
		assert.Len(t, historico, 3)
		assert.Equal(t, int64(11), historico[0].ID)
		assert.Equal(t, int64(21), historico[1].ID)
		assert.Equal(t, int64(12), historico[2].ID)
	})

	t.Run("Medicamento com histórico indisponível contribui com nada", func(t *testing.T) {
		service, farmacia := newTestService(t)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		farmacia.EXPECT().
			BuscarHistoricoEstoque(gomock.Any(), int64(1), 10).
			Return(nil, assert.AnError)

		farmacia.EXPECT().
			BuscarHistoricoEstoque(gomock.Any(), int64(2), 10).
			Return([]domain.MovimentacaoEstoque{
				{ID: 21, MedicamentoID: 2, DataMovimentacao: "2026-08-29T15:00:00"},
			}, nil)

		historico, err := service.HistoricoAgregado(context.Background())

		assert.NoError(t, err)
		assert.Len(t, historico, 1)
		assert.Equal(t, int64(21), historico[0].ID)
	})

	t.Run("Só os primeiros MaxMedicamentos entram no agregado", func(t *testing.T) {
		service, farmacia := newTestService(t)

		muitos := []domain.Medicamento{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
		}

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(muitos, nil)

		for id := int64(1); id <= 3; id++ {
			farmacia.EXPECT().
				BuscarHistoricoEstoque(gomock.Any(), id, 10).
				Return(nil, nil)
		}

		_, err := service.HistoricoAgregado(context.Background())

		assert.NoError(t, err)
	})

	t.Run("Falha na listagem de medicamentos propaga o erro", func(t *testing.T) {
		service, farmacia := newTestService(t)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(nil, assert.AnError)

		_, err := service.HistoricoAgregado(context.Background())

		assert.Error(t, err)
	})
}
