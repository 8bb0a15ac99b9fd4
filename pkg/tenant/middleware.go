package tenant

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/flashsale/platform/pkg/apierror"
	"github.com/flashsale/platform/pkg/claims"
	"github.com/flashsale/platform/pkg/correlation"
)

// ClaimsSource yields the verified principal's claim set for the current
// request, or false when no verified principal is present. The jwt
// middleware's ClaimsFromContext satisfies this.
type ClaimsSource func(ctx context.Context) (map[string]any, bool)

// Middleware is the tenant enforcement gate. For every protected request it
// checks, in order: the declared X-ORG-ID header is present, a verified
// principal exists, and the declared org is in the principal's resolved
// membership set. On success it builds the immutable tenant Context and
// installs it for the request; on any rejection it emits the error envelope
// and stops the chain, so downstream handlers never run.
//
// The membership comparison is one-directional: the declared org must be in
// the set resolved from the credential. The set itself is never influenced
// by the header.
//
// Ordering: the correlation middleware must run earlier, and the claims
// source is expected to be populated by an earlier verification stage.
func Middleware(source ClaimsSource, opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultGateConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.isProtected(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			declaredOrg := strings.TrimSpace(r.Header.Get(cfg.orgHeader))
			if declaredOrg == "" {
				apierror.Write(w, r, http.StatusBadRequest, apierror.CodeOrgRequired, cfg.orgHeader+" header is required")
				return
			}

			claimSet, ok := source(r.Context())
			if !ok {
				apierror.Write(w, r, http.StatusUnauthorized, apierror.CodeUnauthorized, "Missing or invalid bearer token")
				return
			}

			allowedOrgs := claims.AllowedOrgs(claimSet)
			if !slices.Contains(allowedOrgs, declaredOrg) {
				apierror.Write(w, r, http.StatusForbidden, apierror.CodeOrgForbidden, cfg.orgHeader+" is not allowed for this user")
				return
			}

			tc := NewContext(
				declaredOrg,
				firstNonBlank(claims.PreferredUsername(claimSet), claims.Subject(claimSet)),
				claims.Authorities(claimSet, cfg.authorityDefaults(claimSet)...),
				correlation.FromContext(r.Context()),
			)

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tc)))
		})
	}
}

func firstNonBlank(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}
