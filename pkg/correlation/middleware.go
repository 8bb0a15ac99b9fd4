package correlation

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header is the canonical correlation-ID header name. The same header is
// read on the way in and set on the way out.
const Header = "X-Correlation-ID"

// Middleware assigns a correlation ID to every request. A non-blank inbound
// value is reused verbatim; otherwise a fresh UUID is generated. The chosen
// ID is set on the response header before the rest of the chain runs, so it
// is present on success, rejection, and fault paths alike. This middleware
// never fails a request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(Header)
		if strings.TrimSpace(correlationID) == "" {
			correlationID = uuid.New().String()
		}
		w.Header().Set(Header, correlationID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), correlationID)))
	})
}
