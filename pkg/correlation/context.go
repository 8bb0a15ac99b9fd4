package correlation

import "context"

type contextKey struct{}

func WithContext(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, contextKey{}, correlationID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return correlationID
}
