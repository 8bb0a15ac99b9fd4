package directory

import (
	"context"
	"errors"
)

// ErrTenantNotFound is returned when no tenant matches the requested org ID.
var ErrTenantNotFound = errors.New("directory: tenant not found")

// Store is the persistence contract for the tenant registry. Lookups are
// keyed by the external org ID, the same identifier the enforcement gate
// compares against the credential's membership set.
type Store interface {
	FindByOrgID(ctx context.Context, orgID string) (Tenant, error)
	Upsert(ctx context.Context, in TenantInput) (Tenant, error)
}
