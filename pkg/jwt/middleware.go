package jwt

import (
	"net/http"
	"strings"

	"github.com/flashsale/platform/pkg/apierror"
)

// Middleware verifies the bearer credential when one is supplied and installs
// its decoded claim set into the request context.
//
// A request without an Authorization header passes through without claims;
// whether that matters is decided downstream by the tenant enforcement gate,
// which rejects protected paths that lack a verified principal. A request
// that does present a bearer token but fails verification is rejected here
// with 401, since the caller clearly intended to authenticate.
func Middleware(verifier *Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				apierror.Write(w, r, http.StatusUnauthorized, apierror.CodeUnauthorized, "Missing or invalid bearer token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>" per RFC 6750.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
