package factory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

// Campos editáveis pelo formulário
const (
	FieldFactoryName           = "factory_name"
	FieldMaxDailyCapacity      = "max_daily_capacity"
	FieldMachineEfficiency     = "machine_efficiency"
	FieldAvailableShiftsPerDay = "available_shifts_per_day"
	FieldHoursPerShift         = "hours_per_shift"
)

type FactoryEditor interface {
	Seed(ctx context.Context)
	Config() domain.FactoryConfig
	UpdateField(name, raw string) (domain.FactoryConfig, error)
	AddDowntime(date, reason, rawHours string) (domain.FactoryConfig, error)
	RemoveDowntime(index int) (domain.FactoryConfig, error)
	Submit(ctx context.Context) ([]domain.ScheduleEntry, error)
}

// Regenerator é quem transforma a configuração em um novo cronograma
type Regenerator interface {
	Regenerate(ctx context.Context, params *domain.RegenerationParams) ([]domain.ScheduleEntry, error)
}

type Service struct {
	mu          sync.RWMutex
	config      domain.FactoryConfig
	planner     planner.PlannerIntegrator
	regenerator Regenerator
}

func NewService(plannerService planner.PlannerIntegrator, regenerator Regenerator) FactoryEditor {
	return &Service{
		config:      domain.DefaultFactoryConfig(),
		planner:     plannerService,
		regenerator: regenerator,
	}
}

// Seed carrega a configuração do serviço de planejamento, mantendo a padrão em caso de falha
func (s *Service) Seed(ctx context.Context) {
	factory, err := s.planner.GetFactoryInfo(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("factory: usando configuração padrão da fábrica")
		return
	}

	s.mu.Lock()
	s.config = factory.Clone()
	s.mu.Unlock()

	log.ForContext(ctx).Infof("factory: configuração carregada (%s)", factory.FactoryName)
}

func (s *Service) Config() domain.FactoryConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config.Clone()
}

func (s *Service) UpdateField(name, raw string) (domain.FactoryConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == FieldFactoryName {
		s.config.FactoryName = raw
		return s.config.Clone(), nil
	}

	var target *int
	switch name {
	case FieldMaxDailyCapacity:
		target = &s.config.MaxDailyCapacity
	case FieldMachineEfficiency:
		target = &s.config.MachineEfficiency
	case FieldAvailableShiftsPerDay:
		target = &s.config.AvailableShiftsPerDay
	case FieldHoursPerShift:
		target = &s.config.HoursPerShift
	default:
		return domain.FactoryConfig{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	value, err := parseInt(raw)
	if err != nil {
		return domain.FactoryConfig{}, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, name, raw)
	}
	*target = value

	return s.config.Clone(), nil
}

func (s *Service) AddDowntime(date, reason, rawHours string) (domain.FactoryConfig, error) {
	hours, err := parseInt(rawHours)
	if err != nil {
		return domain.FactoryConfig{}, fmt.Errorf("%w: hours=%q", ErrInvalidNumber, rawHours)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.DowntimeSchedule = append(s.config.DowntimeSchedule, domain.DowntimeWindow{
		Date:                  date,
		Reason:                reason,
		ExpectedDowntimeHours: hours,
	})
	return s.config.Clone(), nil
}

func (s *Service) RemoveDowntime(index int) (domain.FactoryConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.config.DowntimeSchedule) {
		return domain.FactoryConfig{}, fmt.Errorf("%w: %d", ErrDowntimeIndex, index)
	}

	s.config.DowntimeSchedule = append(s.config.DowntimeSchedule[:index:index], s.config.DowntimeSchedule[index+1:]...)
	return s.config.Clone(), nil
}

// Submit envia a configuração atual para regenerar o cronograma.
// Em falha as edições locais são mantidas.
func (s *Service) Submit(ctx context.Context) ([]domain.ScheduleEntry, error) {
	params, err := s.Config().RegenerationParams()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	entries, err := s.regenerator.Regenerate(ctx, params)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("factory: erro ao atualizar o cronograma de produção")
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	return entries, nil
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
