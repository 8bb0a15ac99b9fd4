// Package logger builds the slog loggers used by every service. Each service
// creates one logger at startup, decorated with context extractors so that
// every record emitted during a request automatically carries the correlation
// ID and, once the enforcement gate has run, the acting tenant and user:
//
//	log := logger.NewFromConfig(cfg, "catalog",
//		correlation.LoggerExtractor(),
//		tenant.LoggerExtractor(),
//	)
//
// This replaces per-request diagnostic state: values are read from the
// request context at log time, so nothing leaks between requests and nothing
// needs explicit cleanup.
package logger
