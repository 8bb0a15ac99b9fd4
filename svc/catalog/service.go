package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/flashsale/platform/pkg/logger"
	"github.com/flashsale/platform/pkg/tenant"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service implements the product read and write use cases. Every operation
// resolves its tenant from the established tenant context; nothing here
// accepts a tenant ID from request input.
type Service struct {
	store Store
	log   *slog.Logger
}

// NewService creates a Service over the given store.
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// List returns a page of the current tenant's active products. A non-blank
// query switches to case-insensitive name/description search.
func (s *Service) List(ctx context.Context, pageNumber, pageSize int, query string) (Paged[ProductSummary], error) {
	tenantID, err := tenant.RequiredTenantID(ctx)
	if err != nil {
		return Paged[ProductSummary]{}, err
	}

	page := clampPage(pageNumber, pageSize)

	var (
		products []Product
		total    int64
	)
	if q := strings.TrimSpace(query); q != "" {
		products, total, err = s.store.SearchByTenant(ctx, tenantID, q, page)
	} else {
		products, total, err = s.store.FindByTenant(ctx, tenantID, page)
	}
	if err != nil {
		return Paged[ProductSummary]{}, err
	}

	items := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		items = append(items, summaryOf(p))
	}
	return pagedOf(items, page, total), nil
}

// Get returns one active product of the current tenant.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (ProductDetail, error) {
	tenantID, err := tenant.RequiredTenantID(ctx)
	if err != nil {
		return ProductDetail{}, err
	}

	p, err := s.store.FindByTenantAndID(ctx, tenantID, id)
	if err != nil {
		return ProductDetail{}, err
	}
	if !p.Active {
		return ProductDetail{}, ErrProductNotFound
	}
	return detailOf(p), nil
}

// Create persists a new product under the current tenant.
func (s *Service) Create(ctx context.Context, in ProductInput) (ProductDetail, error) {
	tenantID, err := tenant.RequiredTenantID(ctx)
	if err != nil {
		return ProductDetail{}, err
	}

	created, err := s.store.CreateForTenant(ctx, tenantID, Product{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		Active:      in.Active,
	})
	if err != nil {
		return ProductDetail{}, err
	}

	s.log.InfoContext(ctx, "Product created", slog.String("product_id", created.ID.String()))
	return detailOf(created), nil
}

// Update replaces the mutable fields of an existing product of the current
// tenant. The store guard rejects the write if the loaded entity's tenant
// does not match the acting one.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in ProductInput) (ProductDetail, error) {
	tenantID, err := tenant.RequiredTenantID(ctx)
	if err != nil {
		return ProductDetail{}, err
	}

	existing, err := s.store.FindByTenantAndID(ctx, tenantID, id)
	if err != nil {
		return ProductDetail{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.PriceCents = in.PriceCents
	existing.Currency = in.Currency
	existing.Active = in.Active

	updated, err := s.store.UpdateForTenant(ctx, tenantID, existing)
	if err != nil {
		return ProductDetail{}, err
	}
	return detailOf(updated), nil
}

// Delete removes a product of the current tenant.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	tenantID, err := tenant.RequiredTenantID(ctx)
	if err != nil {
		return err
	}

	deleted, err := s.store.DeleteByTenantAndID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}

	s.log.InfoContext(ctx, "Product deleted",
		logger.TenantID(tenantID), slog.String("product_id", id.String()))
	return nil
}

func clampPage(number, size int) Page {
	if number < 0 {
		number = 0
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return Page{Number: number, Size: size}
}
