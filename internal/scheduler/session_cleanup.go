package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/repository"
)

const (
	// Sessões sem uso há mais tempo que isso são descartadas junto com seus
	// rascunhos de venda, via ON DELETE CASCADE.
	sessionMaxIdle = 7 * 24 * time.Hour

	sessionCleanupCron = "0 3 * * *"
)

// SessionCleanupService remove diariamente as sessões abandonadas.
type SessionCleanupService struct {
	scheduler    *gocron.Scheduler
	sessionRepo  repository.SessionRepository
	cleanupMutex sync.Mutex
	running      bool
}

func NewSessionCleanupService(sessionRepo repository.SessionRepository) *SessionCleanupService {
	return &SessionCleanupService{
		scheduler:   gocron.NewScheduler(time.Local),
		sessionRepo: sessionRepo,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	logrus.WithField("cron", sessionCleanupCron).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(sessionCleanupCron).Do(func() {
		s.cleanupSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SessionCleanupService) cleanupSessions() {
	s.cleanupMutex.Lock()
	if s.running {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.running = true
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.running = false
		s.cleanupMutex.Unlock()
	}()

	cutoff := time.Now().UTC().Add(-sessionMaxIdle)

	removed, err := s.sessionRepo.DeleteExpiredSessions(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sessões abandonadas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"removed": removed,
		"cutoff":  cutoff.Format(time.RFC3339),
	}).Info("Limpeza de sessões concluída")
}
