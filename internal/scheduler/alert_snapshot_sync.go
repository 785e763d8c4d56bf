package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/alerting"
)

// AlertSnapshotSyncConfig representa a configuração do agendador de snapshots de alertas
type AlertSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AlertSnapshotSyncService renova periodicamente os snapshots de alertas que
// o dashboard usa como reserva quando o backend não responde. O agendador
// roda sem sessão de usuário, então as chamadas saem com as credenciais de
// serviço configuradas.
type AlertSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              AlertSnapshotSyncConfig
	appConfig           *config.Config
	alerter             alerting.Alerter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAlertSnapshotSyncService(
	alerter alerting.Alerter,
	appConfig *config.Config,
) *AlertSnapshotSyncService {
	syncConfig := AlertSnapshotSyncConfig{
		CronSchedule: appConfig.AlertSnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.AlertSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de alertas carregada")

	return &AlertSnapshotSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		appConfig: appConfig,
		alerter:   alerter,
	}
}

// Start inicia o agendador
func (s *AlertSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de alertas desabilitada por configuração")
		return nil
	}

	if s.appConfig.Farmacia.ServiceUsername == "" || s.appConfig.Farmacia.ServicePassword == "" {
		logrus.Warn("Credenciais de serviço ausentes, sincronização de snapshots de alertas desabilitada")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAlertSnapshots(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAlertSnapshots renova os dois snapshots com as credenciais de serviço
func (s *AlertSnapshotSyncService) syncAlertSnapshots(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de alertas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots de alertas")

	serviceCtx := domain.ContextWithCredentials(ctx, domain.Credentials{
		Username: s.appConfig.Farmacia.ServiceUsername,
		Password: s.appConfig.Farmacia.ServicePassword,
	})

	if err := s.alerter.AtualizarSnapshots(serviceCtx); err != nil {
		logrus.WithError(err).Error("Erro ao renovar snapshots de alertas")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Sincronização de snapshots de alertas concluída")
}

// TriggerManualSync inicia manualmente uma renovação dos snapshots
func (s *AlertSnapshotSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de alertas")
	go s.syncAlertSnapshots(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *AlertSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
