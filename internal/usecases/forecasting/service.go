package forecasting

import (
	"context"

	"github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

type ForecastService interface {
	GetForecast(ctx context.Context) (*domain.Forecast, error)
	GetCoverage(ctx context.Context) domain.CoverageReport
}

// ScheduleReader entrega o cronograma pelo mesmo caminho das rotas de produção,
// incluindo a busca do cronograma padrão quando o cache está vazio
type ScheduleReader interface {
	Schedule(ctx context.Context) []domain.ScheduleEntry
}

type Service struct {
	planner  planner.PlannerIntegrator
	schedule ScheduleReader
}

func NewService(plannerService planner.PlannerIntegrator, schedule ScheduleReader) ForecastService {
	return &Service{
		planner:  plannerService,
		schedule: schedule,
	}
}

// GetForecast faz uma única leitura da previsão. Em falha devolve a previsão vazia junto com o erro.
func (s *Service) GetForecast(ctx context.Context) (*domain.Forecast, error) {
	forecast, err := s.planner.GetForecast(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("forecasting: erro ao obter previsão")
		return domain.EmptyForecast(), err
	}
	return forecast, nil
}

func (s *Service) GetCoverage(ctx context.Context) domain.CoverageReport {
	forecast, _ := s.GetForecast(ctx)
	return domain.ForecastCoverage(forecast, s.schedule.Schedule(ctx))
}
