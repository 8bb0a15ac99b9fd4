package directory

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// ErrInvalidInput is returned when an upsert is missing required fields.
var ErrInvalidInput = errors.New("directory: invalid tenant input")

// DefaultCacheTTL bounds how long a cached tenant record may lag the
// registry.
const DefaultCacheTTL = 5 * time.Minute

// Service implements the tenant registry use cases with a read-through
// cache: lookups hit the cache first, upserts write the store and invalidate.
type Service struct {
	store Store
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService creates a Service over the given store and cache. A
// non-positive ttl falls back to DefaultCacheTTL.
func NewService(store Store, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{store: store, cache: cache, ttl: ttl, log: log}
}

// GetByOrgID returns the tenant registered under the given org ID.
func (s *Service) GetByOrgID(ctx context.Context, orgID string) (Tenant, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return Tenant{}, ErrTenantNotFound
	}

	if t, ok := s.cache.Get(ctx, orgID); ok {
		return t, nil
	}

	t, err := s.store.FindByOrgID(ctx, orgID)
	if err != nil {
		return Tenant{}, err
	}

	s.cache.Set(ctx, t, s.ttl)
	return t, nil
}

// Upsert registers or updates a tenant and invalidates its cached record, so
// the next lookup observes the new state.
func (s *Service) Upsert(ctx context.Context, in TenantInput) (Tenant, error) {
	in.OrgID = strings.TrimSpace(in.OrgID)
	in.Name = strings.TrimSpace(in.Name)
	if in.OrgID == "" || in.Name == "" {
		return Tenant{}, ErrInvalidInput
	}

	t, err := s.store.Upsert(ctx, in)
	if err != nil {
		return Tenant{}, err
	}

	s.cache.Delete(ctx, t.OrgID)
	s.log.InfoContext(ctx, "Tenant upserted",
		slog.String("org_id", t.OrgID), slog.Bool("active", t.Active))
	return t, nil
}
