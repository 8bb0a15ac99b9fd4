package directory

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flashsale/platform/pkg/apierror"
	"github.com/flashsale/platform/pkg/logger"
)

// Router mounts the tenant registry API under the protected /api namespace.
func Router(svc *Service, log *slog.Logger) chi.Router {
	h := &handlers{svc: svc, log: log}

	r := chi.NewRouter()
	r.Route("/api/tenants", func(r chi.Router) {
		r.Post("/", h.upsert)
		r.Get("/{orgID}", h.get)
	})
	return r
}

type handlers struct {
	svc *Service
	log *slog.Logger
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetByOrgID(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *handlers) upsert(w http.ResponseWriter, r *http.Request) {
	var in TenantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierror.Write(w, r, http.StatusBadRequest, apierror.CodeBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Upsert(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrTenantNotFound):
		apierror.Write(w, r, http.StatusNotFound, apierror.CodeNotFound, "Tenant not found")
	case errors.Is(err, ErrInvalidInput):
		apierror.Write(w, r, http.StatusBadRequest, apierror.CodeBadRequest, "orgId and name are required")
	default:
		h.log.ErrorContext(r.Context(), "Unhandled directory error", logger.Error(err))
		apierror.Write(w, r, http.StatusInternalServerError, apierror.CodeInternal, "Internal server error")
	}
}

func (h *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "Failed to encode response", logger.Error(err))
	}
}
