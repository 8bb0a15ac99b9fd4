// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, and health-check handlers.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
//
//	srv := httpserver.NewFromConfig(cfg, log)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled or an interrupt/TERM signal
// arrives, then drains in-flight requests within the shutdown timeout. Start
// and shutdown failures are wrapped with ErrStart and ErrShutdown for
// errors.Is inspection.
package httpserver
