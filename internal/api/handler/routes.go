package handler

import (
	"net/http"

	"github.com/vfg2006/production-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/factory"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/production"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Forecast(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service),
		},
		{
			Path:    "/api/forecast/coverage",
			Method:  http.MethodGet,
			Handler: GetForecastCoverage(service),
		},
	}
}

func FactoryInfo(editor factory.FactoryEditor) []router.Route {
	return []router.Route{
		{
			Path:    "/api/factory-info",
			Method:  http.MethodGet,
			Handler: GetFactoryInfo(editor),
		},
		{
			Path:    "/api/factory-info",
			Method:  http.MethodPatch,
			Handler: UpdateFactoryField(editor),
		},
		{
			Path:    "/api/factory-info/downtime",
			Method:  http.MethodPost,
			Handler: AddFactoryDowntime(editor),
		},
		{
			Path:    "/api/factory-info/downtime/:index",
			Method:  http.MethodDelete,
			Handler: RemoveFactoryDowntime(editor),
		},
		{
			Path:    "/api/factory-info/submit",
			Method:  http.MethodPost,
			Handler: SubmitFactoryInfo(editor),
		},
	}
}

func Production(service production.ProductionService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/yearly",
			Method:  http.MethodGet,
			Handler: GetYearlySchedule(service),
		},
		{
			Path:    "/api/yearly",
			Method:  http.MethodPost,
			Handler: RegenerateSchedule(service),
		},
		{
			Path:    "/api/yearly/summary",
			Method:  http.MethodGet,
			Handler: GetYearlySummary(service),
		},
		{
			Path:    "/api/daily",
			Method:  http.MethodGet,
			Handler: GetDailySchedule(service),
		},
		{
			Path:    "/api/daily/dates",
			Method:  http.MethodGet,
			Handler: GetScheduleDates(service),
		},
		{
			Path:    "/api/regenerations",
			Method:  http.MethodGet,
			Handler: ListRegenerations(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/warmup/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, CronJobTypeWarmup),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
