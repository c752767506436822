package handler

import (
	"net/http"

	"github.com/vfg2006/production-dashboard-api/internal/usecases/production"
)

func GetDailySchedule(service production.ProductionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Uma data sem correspondência, em qualquer formato, resulta em lista vazia
		writeJSON(w, r, http.StatusOK, service.Daily(r.Context(), r.URL.Query().Get("date")))
	})
}

func GetScheduleDates(service production.ProductionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Dates(r.Context()))
	})
}
