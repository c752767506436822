package planner

import (
	"context"
	"time"

	"github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner/plannerclient"
	"github.com/vfg2006/production-dashboard-api/internal/config"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

// PlannerIntegrator é a porta de acesso ao serviço externo de previsão e planejamento
type PlannerIntegrator interface {
	GetForecast(ctx context.Context) (*domain.Forecast, error)
	GetFactoryInfo(ctx context.Context) (*domain.FactoryConfig, error)
	GenerateSchedule(ctx context.Context, params *domain.RegenerationParams) ([]domain.ScheduleEntry, error)
}

type PlannerService struct {
	cfg    *config.Config
	Client plannerclient.Client
}

func New(cfg *config.Config, client plannerclient.Client) PlannerIntegrator {
	return &PlannerService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PlannerService) GetForecast(ctx context.Context) (*domain.Forecast, error) {
	start := time.Now()
	forecast, err := s.Client.GetForecast(ctx)
	if err != nil {
		s.logFailure(ctx, "/forecast", start, err)
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"endpoint":         "/forecast",
		"planner_products": len(forecast.Products),
		"planner_ms":       time.Since(start).Milliseconds(),
	}).Debug("planner: previsão obtida")
	return forecast, nil
}

func (s *PlannerService) GetFactoryInfo(ctx context.Context) (*domain.FactoryConfig, error) {
	start := time.Now()
	factory, err := s.Client.GetFactoryInfo(ctx)
	if err != nil {
		s.logFailure(ctx, "/factory-info", start, err)
		return nil, err
	}

	if duplicates := factory.DuplicateConstraintIDs(); len(duplicates) > 0 {
		log.ForContext(ctx).WithField("planner_duplicate_products", duplicates).
			Warn("planner: restrições de produto com product_id repetido")
	}
	return factory, nil
}

func (s *PlannerService) GenerateSchedule(ctx context.Context, params *domain.RegenerationParams) ([]domain.ScheduleEntry, error) {
	start := time.Now()
	entries, err := s.Client.GenerateSchedule(ctx, params)
	if err != nil {
		s.logFailure(ctx, "/generate-production-schedule", start, err)
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"endpoint":       "/generate-production-schedule",
		"entries":        len(entries),
		"planner_params": params != nil,
		"planner_ms":     time.Since(start).Milliseconds(),
	}).Info("planner: cronograma gerado")
	return entries, nil
}

func (s *PlannerService) logFailure(ctx context.Context, endpoint string, start time.Time, err error) {
	log.ForContext(ctx).WithError(err).WithFields(log.Fields{
		"endpoint":    endpoint,
		"planner_url": s.cfg.Planner.URL,
		"planner_ms":  time.Since(start).Milliseconds(),
	}).Error("planner: falha na chamada ao serviço de planejamento")
}
