package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/production-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/production-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/production-dashboard-api/internal/config"
)

const migrationTimeout = 30 * time.Second

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

// Cria a tabela do histórico de regenerações sem subir a API
func main() {
	setupLogger()
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		logrus.Fatalf("ERRO ao testar conexão: %v", err)
	}

	if err := repository.NewRegenerationRepository(conn).EnsureSchema(ctx); err != nil {
		logrus.Fatalf("ERRO ao criar tabela de histórico: %v", err)
	}

	logrus.Infof("Migração concluída em %s", time.Since(startTime))
}
