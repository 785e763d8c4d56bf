package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/database/postgres"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/repository"
	"github.com/erickpaes/farmacia-manager-api/internal/api"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/scheduler"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/alerting"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/cataloging"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/dashboarding"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/registering"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/selling"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/stocking"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/validating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sessionRepo := repository.NewSessionRepository(pgConn)
	draftRepo := repository.NewVendaDraftRepository(pgConn)

	farmacia := farmaciaclient.NewClient(cfg)
	validator := validating.New()

	authenticator := authenticating.NewService(sessionRepo, farmacia, cfg)
	cataloger := cataloging.NewService(farmacia, validator)
	registrar := registering.NewService(farmacia, validator)
	stocker := stocking.NewService(farmacia, validator, cfg)
	seller := selling.NewService(draftRepo, farmacia)
	alerter := alerting.NewService(farmacia, cfg)
	dashboarder := dashboarding.NewService(farmacia, alerter)

	alertSnapshotSyncService := scheduler.NewAlertSnapshotSyncService(alerter, cfg)
	sessionCleanupService := scheduler.NewSessionCleanupService(sessionRepo)

	if err := alertSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de alertas")
	} else {
		logrus.Info("Agendador de snapshots de alertas iniciado com sucesso")
	}

	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		cataloger,
		registrar,
		stocker,
		seller,
		alerter,
		dashboarder,
		alertSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
