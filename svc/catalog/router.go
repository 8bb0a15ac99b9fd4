package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flashsale/platform/pkg/apierror"
	"github.com/flashsale/platform/pkg/logger"
	"github.com/flashsale/platform/pkg/tenant"
)

// Router mounts the catalog API. All routes live under the protected /api
// namespace; the tenant enforcement gate must run earlier in the chain.
func Router(svc *Service, log *slog.Logger) chi.Router {
	h := &handlers{svc: svc, log: log}

	r := chi.NewRouter()
	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/context/whoami", h.whoAmI)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.list)
			r.Post("/", h.create)
			r.Get("/{productID}", h.get)
			r.Put("/{productID}", h.update)
			r.Delete("/{productID}", h.delete)
		})
	})
	return r
}

type handlers struct {
	svc *Service
	log *slog.Logger
}

// whoAmI echoes the installed tenant context, used by clients and operators
// to verify what tenant a credential resolves to.
func (h *handlers) whoAmI(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenant.FromContext(r.Context())
	if !ok {
		h.writeError(w, r, tenant.ErrNoContext)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tc)
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", defaultPageSize)

	result, err := h.svc.List(r.Context(), page, size, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, detail)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, detail)
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, detail)
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		apierror.Write(w, r, http.StatusBadRequest, apierror.CodeBadRequest, "productID must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *handlers) decodeInput(w http.ResponseWriter, r *http.Request) (ProductInput, bool) {
	var in ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierror.Write(w, r, http.StatusBadRequest, apierror.CodeBadRequest, "invalid request body")
		return ProductInput{}, false
	}
	if in.Name == "" {
		apierror.Write(w, r, http.StatusBadRequest, apierror.CodeBadRequest, "name is required")
		return ProductInput{}, false
	}
	return in, true
}

// writeError maps domain errors to envelope rejections. Pipeline-misuse
// errors are logged loudly and surface as 500s: they mean the gate or a
// caller skipped the contract, and must never be silently absorbed.
func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		apierror.Write(w, r, http.StatusNotFound, apierror.CodeNotFound, "Product not found")
	case errors.Is(err, tenant.ErrCrossTenantWrite):
		apierror.Write(w, r, http.StatusConflict, apierror.CodeCrossTenantWrite, "Entity belongs to a different tenant")
	case errors.Is(err, tenant.ErrNoContext), errors.Is(err, tenant.ErrInvalidTenant):
		h.log.ErrorContext(r.Context(), "Tenant pipeline contract violation", logger.Error(err))
		apierror.Write(w, r, http.StatusInternalServerError, apierror.CodeInternal, "Internal server error")
	default:
		h.log.ErrorContext(r.Context(), "Unhandled catalog error", logger.Error(err))
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

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
