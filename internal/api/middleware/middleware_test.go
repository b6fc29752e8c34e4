package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/cosmic-api/internal/api/shared"
	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenTraceID string
	h := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/scientists", nil))

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, rr.Header().Get(shared.TraceIDHeader))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	logs := buf.String()
	assert.Equal(t, 3, strings.Count(logs, `"trace_id":"`+seenTraceID+`"`))
	assert.Contains(t, logs, `"status":418`)
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetrics("cosmic")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/scientists/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	for _, path := range []string{"/scientists/1", "/scientists/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "cosmic_http_request_duration_seconds")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `cosmic_http_requests_total{method="GET",route="/scientists/{id}",status="404"} 2`)
}

func TestTracingMiddleware_PassesThrough(t *testing.T) {
	h := Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/scientists/1", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
}
