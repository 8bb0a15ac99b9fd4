package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the tenant and ID.
var ErrProductNotFound = errors.New("catalog: product not found")

// Page selects a window of a tenant's products. Number is zero-based.
type Page struct {
	Number int
	Size   int
}

func (p Page) offset() int { return p.Number * p.Size }

// Paged is the standard paged response shape.
type Paged[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

func pagedOf[T any](items []T, page Page, total int64) Paged[T] {
	totalPages := int(total) / page.Size
	if int(total)%page.Size > 0 {
		totalPages++
	}
	return Paged[T]{
		Items:      items,
		Page:       page.Number,
		Size:       page.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// Store is the tenant-scoped persistence contract for products. Every
// operation is parameterized by tenant ID; tenant-less variants deliberately
// do not exist. Implementations reuse tenant.RequireTenantID and
// tenant.RequireTenantMatch for the create/update guard checks, making
// cross-tenant reads and writes impossible at the storage boundary even if an
// upstream stage mis-set the context.
//
// List and search return active products only, sorted by name, matching the
// storefront read API.
type Store interface {
	FindByTenant(ctx context.Context, tenantID string, page Page) ([]Product, int64, error)
	SearchByTenant(ctx context.Context, tenantID, query string, page Page) ([]Product, int64, error)
	FindByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (Product, error)
	ExistsByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (bool, error)
	DeleteByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (bool, error)
	CreateForTenant(ctx context.Context, tenantID string, p Product) (Product, error)
	UpdateForTenant(ctx context.Context, tenantID string, p Product) (Product, error)
}
