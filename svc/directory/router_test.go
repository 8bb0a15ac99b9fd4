package directory_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashsale/platform/pkg/correlation"
	"github.com/flashsale/platform/svc/directory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := directory.NewService(directory.NewMemStore(), directory.NewMemoryCache(), 0, discardLogger())
	return correlation.Middleware(directory.Router(svc, discardLogger()))
}

func TestRouterUpsertAndGet(t *testing.T) {
	t.Parallel()
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tenants/",
		strings.NewReader(`{"orgId":"org-a","name":"Acme","realm":"acme-realm","active":true}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var created directory.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "org-a", created.OrgID)
	assert.Equal(t, "acme-realm", created.Realm)

	t.Run("get returns the registered tenant", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tenants/org-a", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var got directory.Tenant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestRouterErrors(t *testing.T) {
	t.Parallel()
	handler := newTestRouter(t)

	t.Run("unknown org is 404 with envelope", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tenants/org-missing", nil)
		req.Header.Set("X-Correlation-ID", "corr-42")
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "NOT_FOUND", envelope["code"])
		assert.Equal(t, "corr-42", envelope["correlationId"])
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tenants/", strings.NewReader("{")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing name is 400", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tenants/", strings.NewReader(`{"orgId":"org-x"}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
