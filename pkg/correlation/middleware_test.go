package correlation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashsale/platform/pkg/correlation"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates new ID when header is missing", func(t *testing.T) {
		t.Parallel()
		handler := correlation.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, correlation.FromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(correlation.Header))
	})

	t.Run("reuses inbound ID verbatim", func(t *testing.T) {
		t.Parallel()
		inbound := "edge-7f3a2b"
		handler := correlation.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, inbound, correlation.FromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(correlation.Header, inbound)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, inbound, rec.Header().Get(correlation.Header))
	})

	t.Run("regenerates for blank header value", func(t *testing.T) {
		t.Parallel()
		handler := correlation.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, correlation.FromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(correlation.Header, "   ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		got := rec.Header().Get(correlation.Header)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, "   ", got)
	})

	t.Run("header set even when handler writes an error", func(t *testing.T) {
		t.Parallel()
		handler := correlation.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(correlation.Header, "req-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(correlation.Header))
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("empty for bare context", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, correlation.FromContext(context.Background()))
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := correlation.WithContext(context.Background(), "abc-123")
		assert.Equal(t, "abc-123", correlation.FromContext(ctx))
	})
}
