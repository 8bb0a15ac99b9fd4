package directory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store used in tests and local development.
type MemStore struct {
	mu      sync.RWMutex
	tenants map[string]Tenant
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{tenants: make(map[string]Tenant)}
}

func (s *MemStore) FindByOrgID(ctx context.Context, orgID string) (Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants[strings.TrimSpace(orgID)]
	if !ok {
		return Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (s *MemStore) Upsert(ctx context.Context, in TenantInput) (Tenant, error) {
	orgID := strings.TrimSpace(in.OrgID)
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[orgID]
	if !ok {
		t = Tenant{ID: uuid.New(), OrgID: orgID, CreatedAt: now}
	}
	t.Name = in.Name
	t.Realm = in.Realm
	t.Active = in.Active
	t.UpdatedAt = now
	s.tenants[orgID] = t
	return t, nil
}

var _ Store = (*MemStore)(nil)
