package apierror

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flashsale/platform/pkg/correlation"
)

// Rejection codes shared by all services. The codes are part of the public
// API contract: clients branch on them, so they never change meaning.
const (
	CodeOrgRequired      = "ORG_REQUIRED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeOrgForbidden     = "ORG_FORBIDDEN"
	CodeCrossTenantWrite = "CROSS_TENANT_WRITE"
	CodeNotFound         = "NOT_FOUND"
	CodeBadRequest       = "BAD_REQUEST"
	CodeUpstreamDown     = "UPSTREAM_UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
)

// Envelope is the uniform failure response body.
type Envelope struct {
	Code          string    `json:"code"`
	Message       string    `json:"message"`
	CorrelationID string    `json:"correlationId"`
	Path          string    `json:"path"`
	Timestamp     time.Time `json:"timestamp"`
}

// Write emits the error envelope for the given request. The correlation ID is
// read from the request context, never regenerated here. If JSON encoding
// fails the response falls back to a minimal fixed-shape body carrying the
// code and message, so a rejection is never answered with an empty body.
func Write(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	envelope := Envelope{
		Code:          code,
		Message:       message,
		CorrelationID: correlation.FromContext(r.Context()),
		Path:          r.URL.Path,
		Timestamp:     time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		_, _ = w.Write([]byte(`{"code":"` + code + `","message":"` + message + `"}`))
	}
}
