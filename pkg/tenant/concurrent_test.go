package tenant_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flashsale/platform/pkg/tenant"
)

// Each in-flight request must see only its own tenant context, even when the
// runtime multiplexes requests over pooled goroutines.
func TestContextIsolationAcrossConcurrentRequests(t *testing.T) {
	t.Parallel()

	claimsFromHeader := func(ctx context.Context) (map[string]any, bool) {
		// Test-only source: authorize every org so the gate always installs
		// a context and the assertion below exercises isolation, not policy.
		org, _ := ctx.Value(orgKey{}).(string)
		return map[string]any{"org_ids": []any{org}}, true
	}

	gate := tenant.Middleware(claimsFromHeader)
	handler := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc, ok := tenant.FromContext(r.Context())
		if !ok {
			http.Error(w, "no context", http.StatusInternalServerError)
			return
		}
		if tc.TenantID != r.Header.Get(tenant.OrgHeader) {
			http.Error(w, "leaked context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	const workers = 32
	const iterations = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			org := fmt.Sprintf("org-%d", worker)
			for i := 0; i < iterations; i++ {
				req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
				req.Header.Set(tenant.OrgHeader, org)
				req = req.WithContext(context.WithValue(req.Context(), orgKey{}, org))
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)
				assert.Equal(t, http.StatusOK, rec.Code)
			}
		}(w)
	}
	wg.Wait()
}

type orgKey struct{}
