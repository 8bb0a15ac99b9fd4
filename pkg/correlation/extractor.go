package correlation

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger that injects
// the correlation ID into every log record emitted within a request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if correlationID := FromContext(ctx); correlationID != "" {
			return slog.String("correlation_id", correlationID), true
		}
		return slog.Attr{}, false
	}
}
