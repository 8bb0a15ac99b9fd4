package jwt

import "context"

type claimsContextKey struct{}

// WithClaims installs a verified claim set into the context.
func WithClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext returns the verified claim set installed by the
// middleware, or false when the request carried no valid credential.
func ClaimsFromContext(ctx context.Context) (map[string]any, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(map[string]any)
	return claims, ok
}
