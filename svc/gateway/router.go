package gateway

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/flashsale/platform/pkg/correlation"
	"github.com/flashsale/platform/pkg/jwt"
	"github.com/flashsale/platform/pkg/tenant"
)

// Upstreams names the services the gateway fronts.
type Upstreams struct {
	Catalog   *url.URL
	Directory *url.URL
}

// Router assembles the edge pipeline: correlation assignment, bearer
// verification, and the tenant enforcement gate, in that order, in front of
// the per-service reverse proxies. Requests rejected by the gate never reach
// an upstream.
func Router(upstreams Upstreams, verifier *jwt.Verifier, log *slog.Logger, gateOpts ...tenant.Option) http.Handler {
	catalogProxy := newProxy(upstreams.Catalog, log)
	directoryProxy := newProxy(upstreams.Directory, log)

	r := chi.NewRouter()
	r.Use(correlation.Middleware)
	r.Use(jwt.Middleware(verifier))
	r.Use(tenant.Middleware(jwt.ClaimsFromContext, gateOpts...))

	r.Handle("/api/catalog/*", catalogProxy)
	r.Handle("/api/tenants/*", directoryProxy)
	r.Handle("/api/tenants", directoryProxy)

	return r
}
