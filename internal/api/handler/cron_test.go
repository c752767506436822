package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false, "sync_enabled": true}
}

func TestCronHandlers(t *testing.T) {
	t.Run("Dispara o aquecimento", func(t *testing.T) {
		job := &fakeCronJob{}

		rec := httptest.NewRecorder()
		RunCronJob(CronJobServices{ScheduleWarmupService: job}, CronJobTypeWarmup).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cron/warmup/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("Serviço ausente responde erro interno", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RunCronJob(CronJobServices{}, CronJobTypeWarmup).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cron/warmup/run", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Tipo desconhecido responde 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RunCronJob(CronJobServices{ScheduleWarmupService: &fakeCronJob{}}, "other").
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cron/other/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Status agrupado por job", func(t *testing.T) {
		rec := httptest.NewRecorder()
		GetCronStatus(CronJobServices{ScheduleWarmupService: &fakeCronJob{}}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cron/status", nil))

		assert.JSONEq(t, `{"warmup":{"sync_running":false,"sync_enabled":true}}`, rec.Body.String())
	})
}
