package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/flashsale/platform/pkg/tenant"
)

// MemStore is an in-memory Store used in tests and local development. It
// enforces exactly the same tenant guard as the PostgreSQL backend.
type MemStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{products: make(map[uuid.UUID]Product)}
}

func (s *MemStore) FindByTenant(ctx context.Context, tenantID string, page Page) ([]Product, int64, error) {
	return s.collect(tenantID, page, func(Product) bool { return true })
}

func (s *MemStore) SearchByTenant(ctx context.Context, tenantID, query string, page Page) ([]Product, int64, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	return s.collect(tenantID, page, func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

func (s *MemStore) collect(tenantID string, page Page, match func(Product) bool) ([]Product, int64, error) {
	id, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	var all []Product
	for _, p := range s.products {
		if p.TenantID == id && p.Active && match(p) {
			all = append(all, p)
		}
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := int64(len(all))
	start := page.offset()
	if start >= len(all) {
		return []Product{}, total, nil
	}
	end := min(start+page.Size, len(all))
	return all[start:end], total, nil
}

func (s *MemStore) FindByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (Product, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return Product{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok || p.TenantID != tid {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *MemStore) ExistsByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (bool, error) {
	_, err := s.FindByTenantAndID(ctx, tenantID, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrProductNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *MemStore) DeleteByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (bool, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok || p.TenantID != tid {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

func (s *MemStore) CreateForTenant(ctx context.Context, tenantID string, p Product) (Product, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return Product{}, err
	}

	p.TenantID = tid
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	s.mu.Lock()
	s.products[p.ID] = p
	s.mu.Unlock()
	return p, nil
}

func (s *MemStore) UpdateForTenant(ctx context.Context, tenantID string, p Product) (Product, error) {
	if err := tenant.RequireTenantMatch(tenantID, p.TenantID); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[p.ID]
	if !ok || existing.TenantID != p.TenantID {
		return Product{}, ErrProductNotFound
	}
	s.products[p.ID] = p
	return p, nil
}

var _ Store = (*MemStore)(nil)
