package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/production-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// resultResponse é o envelope {success, data|error} usado pelas rotas de regeneração
type resultResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
	}
}

func writeResult(w http.ResponseWriter, r *http.Request, status int, data any, errMessage string) {
	writeJSON(w, r, status, resultResponse{
		Success: errMessage == "",
		Data:    data,
		Error:   errMessage,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// rawText aceita um valor JSON escalar e devolve seu texto: strings sem aspas, números como escritos
func rawText(raw jsoniter.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}

	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.UnmarshalFromString(trimmed, &text); err != nil {
			return "", false
		}
		return text, true
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return "", false
	}
	return trimmed, true
}
