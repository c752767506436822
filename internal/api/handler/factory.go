package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/production-dashboard-api/internal/usecases/factory"
	"github.com/vfg2006/production-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

type updateFieldRequest struct {
	Field string              `json:"field"`
	Value jsoniter.RawMessage `json:"value"`
}

type addDowntimeRequest struct {
	Date   string              `json:"date"`
	Reason string              `json:"reason"`
	Hours  jsoniter.RawMessage `json:"hours"`
}

func GetFactoryInfo(editor factory.FactoryEditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, editor.Config())
	})
}

// UpdateFactoryField edita um campo escalar da configuração
func UpdateFactoryField(editor factory.FactoryEditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req updateFieldRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Field == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "field é obrigatório", nil)
			return
		}

		value, ok := rawText(req.Value)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "value deve ser texto ou número", nil)
			return
		}

		cfg, err := editor.UpdateField(req.Field, value)
		if err != nil {
			writeFactoryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, cfg)
	})
}

func AddFactoryDowntime(editor factory.FactoryEditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req addDowntimeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		hours, ok := rawText(req.Hours)
		if !ok || req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "date e hours são obrigatórios", nil)
			return
		}

		cfg, err := editor.AddDowntime(req.Date, req.Reason, hours)
		if err != nil {
			writeFactoryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, cfg)
	})
}

func RemoveFactoryDowntime(editor factory.FactoryEditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawIndex := httprouter.ParamsFromContext(r.Context()).ByName("index")
		index, err := strconv.Atoi(rawIndex)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice inválido", nil)
			return
		}

		cfg, err := editor.RemoveDowntime(index)
		if err != nil {
			writeFactoryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, cfg)
	})
}

// SubmitFactoryInfo regenera o cronograma com a configuração editada
func SubmitFactoryInfo(editor factory.FactoryEditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := editor.Submit(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("factory-info: erro ao enviar configuração")
			writeResult(w, r, http.StatusInternalServerError, nil, factory.UpdateFailedAlert)
			return
		}

		writeResult(w, r, http.StatusOK, entries, "")
	})
}

func writeFactoryError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("factory-info: edição rejeitada")

	switch {
	case errors.Is(err, factory.ErrUnknownField):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, factory.ErrInvalidNumber):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, factory.ErrDowntimeIndex):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao editar configuração da fábrica", nil)
	}
}
