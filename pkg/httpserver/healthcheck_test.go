package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flashsale/platform/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("liveness without dependencies", func(t *testing.T) {
		t.Parallel()
		handler := httpserver.HealthCheckHandler(context.Background(), log)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("readiness with healthy dependencies", func(t *testing.T) {
		t.Parallel()
		handler := httpserver.HealthCheckHandler(context.Background(), log,
			func(context.Context) error { return nil },
		)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("readiness with failing dependency", func(t *testing.T) {
		t.Parallel()
		handler := httpserver.HealthCheckHandler(context.Background(), log,
			func(context.Context) error { return errors.New("db down") },
		)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
