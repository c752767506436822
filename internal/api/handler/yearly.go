package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/production"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

// regenerateRequest é o corpo de POST /api/yearly. Todos os campos são obrigatórios.
// downtime_schedule pode vir como lista JSON ou já serializado em string.
type regenerateRequest struct {
	MaxDailyCapacity      *int                `json:"max_daily_capacity"`
	MachineEfficiency     *int                `json:"machine_efficiency"`
	AvailableShiftsPerDay *int                `json:"available_shifts_per_day"`
	HoursPerShift         *int                `json:"hours_per_shift"`
	DowntimeSchedule      jsoniter.RawMessage `json:"downtime_schedule"`
}

func (req regenerateRequest) toParams() (*domain.RegenerationParams, error) {
	missing := []string{}
	if req.MaxDailyCapacity == nil {
		missing = append(missing, "max_daily_capacity")
	}
	if req.MachineEfficiency == nil {
		missing = append(missing, "machine_efficiency")
	}
	if req.AvailableShiftsPerDay == nil {
		missing = append(missing, "available_shifts_per_day")
	}
	if req.HoursPerShift == nil {
		missing = append(missing, "hours_per_shift")
	}
	if len(req.DowntimeSchedule) == 0 || string(req.DowntimeSchedule) == "null" {
		missing = append(missing, "downtime_schedule")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	downtime := string(req.DowntimeSchedule)
	var serialized string
	if err := json.UnmarshalFromString(downtime, &serialized); err == nil {
		downtime = serialized
	}

	return &domain.RegenerationParams{
		MaxDailyCapacity:      *req.MaxDailyCapacity,
		MachineEfficiency:     *req.MachineEfficiency,
		AvailableShiftsPerDay: *req.AvailableShiftsPerDay,
		HoursPerShift:         *req.HoursPerShift,
		DowntimeSchedule:      downtime,
	}, nil
}

// GetYearlySchedule retorna o cronograma em memória, [] quando vazio
func GetYearlySchedule(service production.ProductionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Schedule(r.Context()))
	})
}

// RegenerateSchedule gera um novo cronograma com os parâmetros recebidos
func RegenerateSchedule(service production.ProductionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req regenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResult(w, r, http.StatusBadRequest, nil, "Invalid request body: "+err.Error())
			return
		}

		params, err := req.toParams()
		if err != nil {
			writeResult(w, r, http.StatusBadRequest, nil, err.Error())
			return
		}

		entries, err := service.Regenerate(r.Context(), params)
		if err != nil {
			logger.WithError(err).Error("yearly: erro ao regenerar cronograma")

			if errors.Is(err, production.ErrInvalidParams) {
				writeResult(w, r, http.StatusBadRequest, nil, err.Error())
				return
			}
			writeResult(w, r, http.StatusInternalServerError, nil, err.Error())
			return
		}

		logger.WithField("entries", len(entries)).Info("yearly: cronograma regenerado")
		writeResult(w, r, http.StatusOK, entries, "")
	})
}

// GetYearlySummary retorna a matriz mês × produto do cronograma atual
func GetYearlySummary(service production.ProductionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Yearly(r.Context()))
	})
}
