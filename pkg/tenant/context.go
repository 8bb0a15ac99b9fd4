package tenant

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext installs a tenant context for the current request execution.
// The value rides on the request's own context.Context, so it is visible to
// every call within the request, invisible to concurrent requests, and gone
// when the request's context ends, no matter how the request terminates.
func WithContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext retrieves the current tenant context.
// Returns a zero Context and false when none is installed.
func FromContext(ctx context.Context) (Context, bool) {
	tc, ok := ctx.Value(contextKey{}).(Context)
	return tc, ok
}

// RequiredTenantID returns the tenant ID of the current context, or
// ErrNoContext when no context is installed. Storage operations source their
// tenant ID from here, never from unvalidated request input.
func RequiredTenantID(ctx context.Context) (string, error) {
	tc, ok := FromContext(ctx)
	if !ok || tc.TenantID == "" {
		return "", ErrNoContext
	}
	return tc.TenantID, nil
}

// LoggerExtractor returns a ContextExtractor for the logger that annotates
// log records with the acting tenant and user.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		tc, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("tenant",
			slog.String("tenant_id", tc.TenantID),
			slog.String("user_id", tc.UserID),
		), true
	}
}
