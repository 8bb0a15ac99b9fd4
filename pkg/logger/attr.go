package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records which part of the service emitted the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// TenantID records the acting tenant under the key "tenant_id".
func TenantID(id string) slog.Attr {
	return slog.String("tenant_id", id)
}

// UserID records the acting user under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// CorrelationID records the request correlation identifier.
func CorrelationID(id string) slog.Attr {
	return slog.String("correlation_id", id)
}
