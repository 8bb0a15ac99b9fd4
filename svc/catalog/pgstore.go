package catalog

import (
	"context"
	"embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashsale/platform/pkg/pg"
	"github.com/flashsale/platform/pkg/tenant"
)

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations passed to pg.Migrate.
const MigrationsDir = "migrations"

// PGStore is the PostgreSQL-backed product store. Every query is
// tenant-qualified in its WHERE clause, so a wrong tenant ID yields an empty
// result rather than another tenant's rows.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store over the given connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const productColumns = "product_id, tenant_id, name, coalesce(description, ''), price_cents, currency, active"

func (s *PGStore) FindByTenant(ctx context.Context, tenantID string, page Page) ([]Product, int64, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE tenant_id = $1 AND active`, tid,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE tenant_id = $1 AND active
		 ORDER BY name ASC LIMIT $2 OFFSET $3`,
		tid, page.Size, page.offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	return products, total, err
}

func (s *PGStore) SearchByTenant(ctx context.Context, tenantID, query string, page Page) ([]Product, int64, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return nil, 0, err
	}
	pattern := "%" + query + "%"

	var total int64
	if err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM products
		 WHERE tenant_id = $1 AND active
		   AND (name ILIKE $2 OR coalesce(description, '') ILIKE $2)`,
		tid, pattern,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count search: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE tenant_id = $1 AND active
		   AND (name ILIKE $2 OR coalesce(description, '') ILIKE $2)
		 ORDER BY name ASC LIMIT $3 OFFSET $4`,
		tid, pattern, page.Size, page.offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	return products, total, err
}

func (s *PGStore) FindByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (Product, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return Product{}, err
	}

	var p Product
	err = s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND product_id = $2`,
		tid, id,
	).Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.Active)
	if pg.IsNotFound(err) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

func (s *PGStore) ExistsByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (bool, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE tenant_id = $1 AND product_id = $2)`,
		tid, id,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}

func (s *PGStore) DeleteByTenantAndID(ctx context.Context, tenantID string, id uuid.UUID) (bool, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return false, err
	}

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM products WHERE tenant_id = $1 AND product_id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PGStore) CreateForTenant(ctx context.Context, tenantID string, p Product) (Product, error) {
	tid, err := tenant.RequireTenantID(tenantID)
	if err != nil {
		return Product{}, err
	}

	p.TenantID = tid
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if _, err := s.pool.Exec(ctx,
		`INSERT INTO products (product_id, tenant_id, name, description, price_cents, currency, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.TenantID, p.Name, p.Description, p.PriceCents, p.Currency, p.Active,
	); err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *PGStore) UpdateForTenant(ctx context.Context, tenantID string, p Product) (Product, error) {
	if err := tenant.RequireTenantMatch(tenantID, p.TenantID); err != nil {
		return Product{}, err
	}

	// tenant_id appears in the WHERE clause, never in the SET list: an
	// update can change every product field except its owner.
	tag, err := s.pool.Exec(ctx,
		`UPDATE products
		 SET name = $3, description = $4, price_cents = $5, currency = $6, active = $7
		 WHERE tenant_id = $1 AND product_id = $2`,
		p.TenantID, p.ID, p.Name, p.Description, p.PriceCents, p.Currency, p.Active,
	)
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func scanProducts(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]Product, error) {
	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.Active); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

var _ Store = (*PGStore)(nil)
