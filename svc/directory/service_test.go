package directory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashsale/platform/svc/directory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingStore wraps a Store and counts backend lookups, so tests can
// observe cache hits.
type countingStore struct {
	directory.Store
	finds int
}

func (s *countingStore) FindByOrgID(ctx context.Context, orgID string) (directory.Tenant, error) {
	s.finds++
	return s.Store.FindByOrgID(ctx, orgID)
}

func TestServiceGetByOrgID(t *testing.T) {
	t.Parallel()

	t.Run("unknown org is not found", func(t *testing.T) {
		t.Parallel()
		svc := directory.NewService(directory.NewMemStore(), directory.NewMemoryCache(), 0, discardLogger())
		_, err := svc.GetByOrgID(context.Background(), "org-missing")
		assert.ErrorIs(t, err, directory.ErrTenantNotFound)
	})

	t.Run("blank org is not found without a store round trip", func(t *testing.T) {
		t.Parallel()
		store := &countingStore{Store: directory.NewMemStore()}
		svc := directory.NewService(store, directory.NewMemoryCache(), 0, discardLogger())
		_, err := svc.GetByOrgID(context.Background(), "   ")
		assert.ErrorIs(t, err, directory.ErrTenantNotFound)
		assert.Zero(t, store.finds)
	})

	t.Run("second lookup is served from cache", func(t *testing.T) {
		t.Parallel()
		store := &countingStore{Store: directory.NewMemStore()}
		svc := directory.NewService(store, directory.NewMemoryCache(), time.Minute, discardLogger())

		_, err := svc.Upsert(context.Background(), directory.TenantInput{
			OrgID: "org-a", Name: "Acme", Active: true,
		})
		require.NoError(t, err)

		first, err := svc.GetByOrgID(context.Background(), "org-a")
		require.NoError(t, err)
		second, err := svc.GetByOrgID(context.Background(), "org-a")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, store.finds)
	})
}

func TestServiceUpsert(t *testing.T) {
	t.Parallel()

	t.Run("requires org id and name", func(t *testing.T) {
		t.Parallel()
		svc := directory.NewService(directory.NewMemStore(), directory.NewMemoryCache(), 0, discardLogger())

		_, err := svc.Upsert(context.Background(), directory.TenantInput{Name: "Acme"})
		assert.ErrorIs(t, err, directory.ErrInvalidInput)

		_, err = svc.Upsert(context.Background(), directory.TenantInput{OrgID: "org-a"})
		assert.ErrorIs(t, err, directory.ErrInvalidInput)
	})

	t.Run("update keeps identity and invalidates the cache", func(t *testing.T) {
		t.Parallel()
		svc := directory.NewService(directory.NewMemStore(), directory.NewMemoryCache(), time.Minute, discardLogger())

		created, err := svc.Upsert(context.Background(), directory.TenantInput{
			OrgID: "org-a", Name: "Acme", Active: true,
		})
		require.NoError(t, err)

		// Populate the cache, then deactivate.
		_, err = svc.GetByOrgID(context.Background(), "org-a")
		require.NoError(t, err)

		updated, err := svc.Upsert(context.Background(), directory.TenantInput{
			OrgID: "org-a", Name: "Acme Corp", Active: false,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		got, err := svc.GetByOrgID(context.Background(), "org-a")
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", got.Name)
		assert.False(t, got.Active)
	})
}

func TestMemoryCacheExpiry(t *testing.T) {
	t.Parallel()
	cache := directory.NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, directory.Tenant{OrgID: "org-a", Name: "Acme"}, 10*time.Millisecond)
	_, ok := cache.Get(ctx, "org-a")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = cache.Get(ctx, "org-a")
	assert.False(t, ok)
}
