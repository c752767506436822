package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-dashboard-api/internal/config"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/production/mocks"
	"go.uber.org/mock/gomock"
)

func newWarmupService(t *testing.T, enabled bool) (*ScheduleWarmupService, *mocks.MockProductionService) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockProductionService(ctrl)

	cfg := &config.Config{
		ScheduleWarmup: config.ScheduleWarmup{CronSchedule: "0 * * * *", Enabled: enabled},
	}
	return NewScheduleWarmupService(refresher, cfg), refresher
}

func TestScheduleWarmupService_warmup(t *testing.T) {
	tests := []struct {
		name             string
		replaced         bool
		err              error
		expectedReplaced bool
		expectedError    string
	}{
		{
			name:             "Cache vazio recebe o cronograma padrão",
			replaced:         true,
			expectedReplaced: true,
		},
		{
			name:             "Regeneração existente é preservada",
			replaced:         false,
			expectedReplaced: false,
		},
		{
			name:          "Falha do planejamento fica registrada no status",
			err:           errors.New("upstream indisponível"),
			expectedError: "upstream indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, refresher := newWarmupService(t, true)
			refresher.EXPECT().RefreshDefault(gomock.Any()).Return(tt.replaced, tt.err)

			service.warmup(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.expectedReplaced, status["last_sync_replaced"])
			assert.Equal(t, tt.expectedError, status["last_sync_error"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestScheduleWarmupService_guards(t *testing.T) {
	t.Run("Execução em andamento é ignorada", func(t *testing.T) {
		service, _ := newWarmupService(t, true)
		service.syncRunning = true

		service.warmup(context.Background())
		service.TriggerManualSync()

		assert.Equal(t, true, service.GetStatus()["sync_running"])
	})

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service, _ := newWarmupService(t, false)

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron inválido falha ao agendar", func(t *testing.T) {
		service, _ := newWarmupService(t, true)
		service.config.CronSchedule = "not a cron"

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Disparo manual executa o aquecimento", func(t *testing.T) {
		service, refresher := newWarmupService(t, true)
		done := make(chan struct{})
		refresher.EXPECT().RefreshDefault(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
			close(done)
			return true, nil
		})

		service.TriggerManualSync()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("aquecimento manual não executou")
		}
		assert.Eventually(t, func() bool {
			return service.GetStatus()["last_sync_replaced"] == true
		}, time.Second, 10*time.Millisecond)
	})
}
