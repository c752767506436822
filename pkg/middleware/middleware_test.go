package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/production-dashboard-api/pkg/log"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Cors([]string{"http://localhost:3000"})(next)

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "Origem permitida",
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusTeapot,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "Origem não permitida segue sem cabeçalhos",
			method:         http.MethodGet,
			origin:         "http://other.example",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "Preflight responde sem chamar o handler",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/yearly", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/yearly", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, correlationID)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forecast", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "42 ms", formatDuration(42*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}

func TestLoggingMiddleware_quietPath(t *testing.T) {
	log.SetupTestLogger()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
