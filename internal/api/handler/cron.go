package handler

import (
	"net/http"

	"github.com/vfg2006/production-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

const CronJobTypeWarmup = "warmup"

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis para execução manual
type CronJobServices struct {
	ScheduleWarmupService CronJob
}

// RunCronJob dispara manualmente o job informado
func RunCronJob(services CronJobServices, cronType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Infof("cron: disparo manual de %s", cronType)

		switch cronType {
		case CronJobTypeWarmup:
			if services.ScheduleWarmupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento do cronograma não disponível", nil)
				return
			}
			services.ScheduleWarmupService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status dos jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ScheduleWarmupService != nil {
			status[CronJobTypeWarmup] = services.ScheduleWarmupService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
