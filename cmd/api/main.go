package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/production-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner"
	"github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner/plannerclient"
	"github.com/vfg2006/production-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/production-dashboard-api/internal/api"
	"github.com/vfg2006/production-dashboard-api/internal/config"
	"github.com/vfg2006/production-dashboard-api/internal/scheduler"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/factory"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/production"
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

	plannerClient := plannerclient.NewClient(cfg)
	plannerIntegrator := planner.New(cfg, plannerClient)

	// O histórico de regenerações é opcional; sem ele nada é persistido
	var auditRepo repository.RegenerationRepository
	if cfg.Audit.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		auditRepo = repository.NewRegenerationRepository(pgConn)
		if err := auditRepo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar tabela de histórico de regenerações")
		}
		logrus.Info("Histórico de regenerações habilitado")
	}

	store := production.NewStore()
	productionService := production.NewService(cfg, plannerIntegrator, store, auditRepo)
	forecastService := forecasting.NewService(plannerIntegrator, productionService)

	factoryEditor := factory.NewService(plannerIntegrator, productionService)
	factoryEditor.Seed(ctx)

	warmupService := scheduler.NewScheduleWarmupService(productionService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do cronograma")
	} else {
		logrus.Info("Agendador de aquecimento do cronograma iniciado com sucesso")
	}

	server, err := api.New(cfg, forecastService, productionService, factoryEditor, warmupService)
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
