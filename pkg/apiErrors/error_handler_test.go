package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrInvalidFormat, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrDatabaseOperation, http.StatusInternalServerError},
		{ErrExternalService, http.StatusBadGateway},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrNotFound, "downtime index out of range: 9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"VAL_004","message":"downtime index out of range: 9"}`, rec.Body.String())
}
