package scheduler

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

func TestAlertSnapshotSyncService_syncAlertSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	farmacia := farmaciamocks.NewMockClient(ctrl)

	cfg := &config.Config{
		Farmacia: config.Farmacia{
			ServiceUsername: "servico",
			ServicePassword: "senha-servico",
		},
		Alertas: config.Alertas{
			EstoqueLimitePadrao: 10,
			ValidadeDiasPadrao:  30,
		},
		AlertSnapshotSync: config.AlertSnapshotSync{
			CronSchedule: "*/15 * * * *",
			Enabled:      true,
		},
	}

	alerter := alerting.NewService(farmacia, cfg)
	service := NewAlertSnapshotSyncService(alerter, cfg)

	// As chamadas do agendador devem sair com as credenciais de serviço
	var estoqueCreds, validadeCreds domain.Credentials
	farmacia.EXPECT().
		AlertaEstoqueBaixo(gomock.Any(), 10).
		DoAndReturn(func(ctx context.Context, _ int) (*domain.AlertaEstoque, error) {
			estoqueCreds, _ = domain.CredentialsFromContext(ctx)
			return &domain.AlertaEstoque{LimiteUtilizado: 10, Quantidade: 3}, nil
		})
	farmacia.EXPECT().
		AlertaValidadeProxima(gomock.Any(), 30).
		DoAndReturn(func(ctx context.Context, _ int) (*domain.AlertaValidade, error) {
			validadeCreds, _ = domain.CredentialsFromContext(ctx)
			return &domain.AlertaValidade{DiasUtilizados: 30}, nil
		})

	service.syncAlertSnapshots(context.Background())

	assert.Equal(t, "servico", estoqueCreds.Username)
	assert.Equal(t, "senha-servico", estoqueCreds.Password)
	assert.Equal(t, "servico", validadeCreds.Username)
	assert.Equal(t, "senha-servico", validadeCreds.Password)

	// A renovação alimenta os snapshots consultados pelo dashboard
	snapshot, _, ok := alerter.SnapshotEstoque()
	assert.True(t, ok)
	assert.Equal(t, 3, snapshot.Quantidade)

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}
