package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashsale/platform/pkg/tenant"
	"github.com/flashsale/platform/svc/catalog"
)

func seedProduct(t *testing.T, store *catalog.MemStore, tenantID, name string) catalog.Product {
	t.Helper()
	p, err := store.CreateForTenant(context.Background(), tenantID, catalog.Product{
		Name:       name,
		PriceCents: 1000,
		Currency:   "USD",
		Active:     true,
	})
	require.NoError(t, err)
	return p
}

func TestMemStoreCreateForTenant(t *testing.T) {
	t.Parallel()

	t.Run("stamps trimmed tenant id", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemStore()
		p, err := store.CreateForTenant(context.Background(), "  org-a ", catalog.Product{Name: "Widget", Active: true})
		require.NoError(t, err)
		assert.Equal(t, "org-a", p.TenantID)
		assert.NotEqual(t, uuid.Nil, p.ID)
	})

	t.Run("rejects blank tenant id", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemStore()
		_, err := store.CreateForTenant(context.Background(), "  ", catalog.Product{Name: "Widget"})
		assert.ErrorIs(t, err, tenant.ErrInvalidTenant)
	})
}

func TestMemStoreUpdateForTenant(t *testing.T) {
	t.Parallel()

	t.Run("cross-tenant write always rejected, never persisted", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemStore()
		p := seedProduct(t, store, "org-b", "Widget")

		p.Name = "Hijacked"
		_, err := store.UpdateForTenant(context.Background(), "org-a", p)
		assert.ErrorIs(t, err, tenant.ErrCrossTenantWrite)

		unchanged, err := store.FindByTenantAndID(context.Background(), "org-b", p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Widget", unchanged.Name)
	})

	t.Run("same-tenant update persists", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemStore()
		p := seedProduct(t, store, "org-a", "Widget")

		p.Name = "Widget v2"
		updated, err := store.UpdateForTenant(context.Background(), "org-a", p)
		require.NoError(t, err)
		assert.Equal(t, "Widget v2", updated.Name)
	})

	t.Run("unknown product yields not found", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemStore()
		_, err := store.UpdateForTenant(context.Background(), "org-a", catalog.Product{
			ID: uuid.New(), TenantID: "org-a", Name: "Ghost",
		})
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})
}

func TestMemStoreReadsAreTenantScoped(t *testing.T) {
	t.Parallel()
	store := catalog.NewMemStore()
	mine := seedProduct(t, store, "org-a", "Alpha")
	other := seedProduct(t, store, "org-b", "Beta")

	t.Run("list returns only own rows", func(t *testing.T) {
		t.Parallel()
		products, total, err := store.FindByTenant(context.Background(), "org-a", catalog.Page{Size: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, mine.ID, products[0].ID)
	})

	t.Run("find by id for a foreign row yields not found", func(t *testing.T) {
		t.Parallel()
		_, err := store.FindByTenantAndID(context.Background(), "org-a", other.ID)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("exists is tenant-qualified", func(t *testing.T) {
		t.Parallel()
		exists, err := store.ExistsByTenantAndID(context.Background(), "org-a", other.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete cannot cross tenants", func(t *testing.T) {
		t.Parallel()
		deleted, err := store.DeleteByTenantAndID(context.Background(), "org-a", other.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		still, err := store.FindByTenantAndID(context.Background(), "org-b", other.ID)
		require.NoError(t, err)
		assert.Equal(t, other.ID, still.ID)
	})
}

func TestMemStoreSearchAndPaging(t *testing.T) {
	t.Parallel()
	store := catalog.NewMemStore()
	seedProduct(t, store, "org-a", "Red Shoes")
	seedProduct(t, store, "org-a", "Blue Shoes")
	seedProduct(t, store, "org-a", "Green Hat")

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		t.Parallel()
		products, total, err := store.SearchByTenant(context.Background(), "org-a", "shoes", catalog.Page{Size: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		// Sorted by name: Blue before Red.
		require.Len(t, products, 2)
		assert.Equal(t, "Blue Shoes", products[0].Name)
	})

	t.Run("paging windows the sorted list", func(t *testing.T) {
		t.Parallel()
		products, total, err := store.FindByTenant(context.Background(), "org-a", catalog.Page{Number: 1, Size: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, products, 1)
		assert.Equal(t, "Red Shoes", products[0].Name)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		t.Parallel()
		products, _, err := store.FindByTenant(context.Background(), "org-a", catalog.Page{Number: 9, Size: 10})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}
