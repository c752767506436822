package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/production-dashboard-api/internal/usecases/production"
	"github.com/vfg2006/production-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

// ListRegenerations retorna o histórico de regenerações, mais recentes primeiro
func ListRegenerations(service production.ProductionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		records, err := service.Regenerations(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("regenerations: erro ao listar histórico")

			var productionErr *production.ProductionError
			if errors.As(err, &productionErr) {
				apiErrors.WriteError(w, productionErr.Code, productionErr.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar histórico de regenerações", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, records)
	})
}
