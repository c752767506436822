package production

import (
	"context"
	"strconv"
	"time"

	"github.com/vfg2006/production-dashboard-api/infrastructure/integrator/planner"
	"github.com/vfg2006/production-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/production-dashboard-api/internal/config"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
	"github.com/vfg2006/production-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
	"github.com/vfg2006/production-dashboard-api/pkg/utils"
)

type ProductionService interface {
	Schedule(ctx context.Context) []domain.ScheduleEntry
	Snapshot() domain.ScheduleSnapshot
	Regenerate(ctx context.Context, params *domain.RegenerationParams) ([]domain.ScheduleEntry, error)
	RefreshDefault(ctx context.Context) (bool, error)
	Yearly(ctx context.Context) domain.YearlyProduction
	Dates(ctx context.Context) []string
	Daily(ctx context.Context, date string) domain.DailySchedule
	Regenerations(ctx context.Context, limit int) ([]*domain.RegenerationRecord, error)
}

type Service struct {
	cfg     *config.Config
	planner planner.PlannerIntegrator
	store   *Store
	yearly  *YearlyView
	audit   repository.RegenerationRepository
	now     func() time.Time
}

// NewService monta o serviço de produção. audit pode ser nil quando o histórico está desligado.
func NewService(
	cfg *config.Config,
	plannerService planner.PlannerIntegrator,
	store *Store,
	audit repository.RegenerationRepository,
) *Service {
	return &Service{
		cfg:     cfg,
		planner: plannerService,
		store:   store,
		yearly:  NewYearlyView(store),
		audit:   audit,
		now:     time.Now,
	}
}

// Schedule retorna o cronograma em memória. Com SCHEDULE_EAGER_FETCH, um
// cache vazio é preenchido com o cronograma padrão do serviço de planejamento.
func (s *Service) Schedule(ctx context.Context) []domain.ScheduleEntry {
	if s.cfg.Schedule.EagerFetch && s.store.Snapshot().IsEmpty() {
		if _, err := s.RefreshDefault(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("production: não foi possível carregar o cronograma padrão")
		}
	}
	return s.store.Entries()
}

func (s *Service) Snapshot() domain.ScheduleSnapshot {
	return s.store.Snapshot()
}

// Regenerate pede um novo cronograma e, em caso de sucesso, substitui o cache.
// Em caso de falha o cache fica como estava.
func (s *Service) Regenerate(ctx context.Context, params *domain.RegenerationParams) ([]domain.ScheduleEntry, error) {
	logger := log.ForContext(ctx)

	if err := params.Validate(); err != nil {
		return nil, NewProductionError(ErrInvalidParams, apiErrors.ErrInvalidFormat, err.Error())
	}

	entries, err := s.planner.GenerateSchedule(ctx, params)
	if err != nil {
		s.record(ctx, params, domain.RegenerationFailed, 0, err)
		return nil, NewProductionError(ErrRegeneration, apiErrors.ErrExternalService, err.Error())
	}

	snapshot := domain.ScheduleSnapshot{
		Revision:    s.newRevision(ctx),
		Source:      domain.SourceRegeneration,
		GeneratedAt: s.now(),
		Entries:     entries,
	}
	s.store.Replace(snapshot)

	logger.WithFields(log.Fields{
		"revision": snapshot.Revision,
		"entries":  len(entries),
	}).Info("production: cronograma regenerado")

	s.record(ctx, params, domain.RegenerationSucceeded, len(entries), nil)
	return domain.CloneEntries(entries), nil
}

// RefreshDefault busca o cronograma padrão e o coloca em memória, a menos
// que uma regeneração já tenha acontecido. Retorna true se o cache foi trocado.
func (s *Service) RefreshDefault(ctx context.Context) (bool, error) {
	current := s.store.Snapshot()
	if current.Source == domain.SourceRegeneration {
		return false, nil
	}

	entries, err := s.planner.GenerateSchedule(ctx, nil)
	if err != nil {
		return false, NewProductionError(ErrRegeneration, apiErrors.ErrExternalService, err.Error())
	}

	snapshot := domain.ScheduleSnapshot{
		Revision:    s.newRevision(ctx),
		Source:      domain.SourceDefault,
		GeneratedAt: s.now(),
		Entries:     entries,
	}

	// Uma regeneração concluída durante a busca tem precedência
	if !s.store.CompareAndReplace(current.Revision, snapshot) {
		return false, nil
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"revision": snapshot.Revision,
		"entries":  len(entries),
	}).Info("production: cronograma padrão carregado")
	return true, nil
}

func (s *Service) Yearly(ctx context.Context) domain.YearlyProduction {
	s.Schedule(ctx)
	return s.yearly.Yearly()
}

func (s *Service) Dates(ctx context.Context) []string {
	return domain.ScheduleDates(s.Schedule(ctx))
}

// Daily retorna as entradas de um dia. Sem data, usa a data padrão do painel.
func (s *Service) Daily(ctx context.Context, date string) domain.DailySchedule {
	if date == "" {
		date = domain.DefaultSelectedDate
	}
	return domain.DailySchedule{
		Date:    date,
		Entries: domain.DailyProduction(s.Schedule(ctx), date),
	}
}

func (s *Service) Regenerations(ctx context.Context, limit int) ([]*domain.RegenerationRecord, error) {
	if s.audit == nil {
		return []*domain.RegenerationRecord{}, nil
	}

	records, err := s.audit.List(ctx, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("production: erro ao listar histórico de regenerações")
		return nil, NewProductionError(ErrHistory, apiErrors.ErrDatabaseOperation, "Falha ao consultar histórico no banco de dados")
	}
	if records == nil {
		records = []*domain.RegenerationRecord{}
	}
	return records, nil
}

func (s *Service) newRevision(ctx context.Context) string {
	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("production: falha ao gerar revisão, usando timestamp")
		return strconv.FormatInt(s.now().UnixNano(), 10)
	}
	return id
}

// record grava a tentativa no histórico. Falhas aqui não afetam a regeneração.
func (s *Service) record(ctx context.Context, params *domain.RegenerationParams, status domain.RegenerationStatus, entries int, cause error) {
	if s.audit == nil {
		return
	}

	record := &domain.RegenerationRecord{
		ID:        s.newRevision(ctx),
		Params:    *params,
		Status:    status,
		Entries:   entries,
		CreatedAt: s.now(),
	}
	if cause != nil {
		record.Error = cause.Error()
	}

	if err := s.audit.Save(ctx, record); err != nil {
		log.ForContext(ctx).WithError(err).Warn("production: não foi possível registrar a regeneração")
	}
}
