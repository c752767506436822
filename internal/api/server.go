package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/production-dashboard-api/internal/api/handler"
	"github.com/vfg2006/production-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/production-dashboard-api/internal/config"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/factory"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/production"
	"github.com/vfg2006/production-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	forecastService forecasting.ForecastService,
	productionService production.ProductionService,
	factoryEditor factory.FactoryEditor,
	warmupService handler.CronJob,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Forecast(forecastService)...),
		router.WithRoutes(handler.FactoryInfo(factoryEditor)...),
		router.WithRoutes(handler.Production(productionService)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{ScheduleWarmupService: warmupService})...),
	)

	logrus.WithField("routes", len(rt.Routes())).Debugf("Rotas registradas: %v", rt.Routes())

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
