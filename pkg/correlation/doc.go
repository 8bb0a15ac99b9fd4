// Package correlation stamps every HTTP request with a correlation identifier
// so that all log records and response artifacts of one logical request can be
// tied together across services.
//
// The middleware reads the "X-Correlation-ID" header. A non-blank client value
// is reused verbatim, which lets the edge gateway mint an ID once and have the
// downstream services echo the same value. When the header is absent a UUIDv4
// is generated. The chosen ID is stored in the request context and set on the
// response header regardless of how the request terminates.
//
//	mux := chi.NewRouter()
//	mux.Use(correlation.Middleware)
//	mux.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
//		id := correlation.FromContext(r.Context())
//		w.Write([]byte("correlation id: " + id))
//	})
//
// LoggerExtractor integrates with the logger package so the correlation ID is
// attached to log records automatically.
//
// This stage cannot fail a request and returns no errors.
package correlation
