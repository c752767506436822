package handler

import (
	"net/http"

	"github.com/vfg2006/production-dashboard-api/internal/domain"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

const forecastErrorMessage = "Error fetching forecast data"

type forecastErrorResponse struct {
	Message  string                 `json:"message"`
	Status   string                 `json:"status"`
	Year     int                    `json:"year"`
	Products []domain.ForecastEntry `json:"products"`
}

// GetForecast repassa a previsão anual. Em falha responde 500 com a previsão vazia.
func GetForecast(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		forecast, err := service.GetForecast(r.Context())
		if err != nil {
			logger.WithError(err).Error("forecast: erro ao buscar previsão")
			empty := domain.EmptyForecast()
			writeJSON(w, r, http.StatusInternalServerError, forecastErrorResponse{
				Message:  forecastErrorMessage,
				Status:   "error",
				Year:     empty.Year,
				Products: empty.Products,
			})
			return
		}

		logger.Debugf("forecast: %d produtos retornados", len(forecast.Products))
		writeJSON(w, r, http.StatusOK, forecast)
	})
}

func GetForecastCoverage(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetCoverage(r.Context()))
	})
}
