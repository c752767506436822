package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/production-dashboard-api/internal/config"
)

// ScheduleRefresher carrega o cronograma padrão quando nenhuma regeneração aconteceu
type ScheduleRefresher interface {
	RefreshDefault(ctx context.Context) (bool, error)
}

// ScheduleWarmupConfig representa a configuração do agendador de aquecimento do cronograma
type ScheduleWarmupConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ScheduleWarmupService mantém o cache de cronograma preenchido com o cronograma padrão
type ScheduleWarmupService struct {
	scheduler           *gocron.Scheduler
	config              ScheduleWarmupConfig
	refresher           ScheduleRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncReplaced    bool
	lastSyncError       string
}

func NewScheduleWarmupService(refresher ScheduleRefresher, appConfig *config.Config) *ScheduleWarmupService {
	warmupConfig := ScheduleWarmupConfig{
		CronSchedule: appConfig.ScheduleWarmup.CronSchedule,
		SyncEnabled:  appConfig.ScheduleWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"sync_enabled":  warmupConfig.SyncEnabled,
	}).Info("Configuração do aquecimento do cronograma carregada")

	return &ScheduleWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmupConfig,
		refresher: refresher,
	}
}

// Start agenda o aquecimento e para o agendador quando ctx é cancelado
func (s *ScheduleWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Aquecimento do cronograma desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do cronograma")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do cronograma: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do cronograma")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ScheduleWarmupService) warmup(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do cronograma já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	replaced, err := s.refresher.RefreshDefault(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncReplaced = replaced
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao aquecer o cronograma")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"replaced": replaced,
	}).Info("Aquecimento do cronograma concluído")
}

// TriggerManualSync dispara o aquecimento fora do agendamento
func (s *ScheduleWarmupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do cronograma já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do cronograma")
	go s.warmup(context.Background())
}

// GetStatus retorna o status atual do aquecimento
func (s *ScheduleWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_replaced":     s.lastSyncReplaced,
		"last_sync_error":        s.lastSyncError,
	}
}
