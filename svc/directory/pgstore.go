package directory

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashsale/platform/pkg/pg"
)

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations passed to pg.Migrate.
const MigrationsDir = "migrations"

// PGStore is the PostgreSQL-backed tenant registry. org_id carries a unique
// constraint, so Upsert resolves races at the database rather than in code.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store over the given connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const tenantColumns = "tenant_id, org_id, name, realm, active, created_at, updated_at"

func (s *PGStore) FindByOrgID(ctx context.Context, orgID string) (Tenant, error) {
	var t Tenant
	err := s.pool.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE org_id = $1`,
		strings.TrimSpace(orgID),
	).Scan(&t.ID, &t.OrgID, &t.Name, &t.Realm, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if pg.IsNotFound(err) {
		return Tenant{}, ErrTenantNotFound
	}
	if err != nil {
		return Tenant{}, fmt.Errorf("find tenant: %w", err)
	}
	return t, nil
}

func (s *PGStore) Upsert(ctx context.Context, in TenantInput) (Tenant, error) {
	var t Tenant
	err := s.pool.QueryRow(ctx,
		`INSERT INTO tenants (tenant_id, org_id, name, realm, active)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (org_id) DO UPDATE
		 SET name = EXCLUDED.name,
		     realm = EXCLUDED.realm,
		     active = EXCLUDED.active,
		     updated_at = now()
		 RETURNING `+tenantColumns,
		uuid.New(), strings.TrimSpace(in.OrgID), in.Name, in.Realm, in.Active,
	).Scan(&t.ID, &t.OrgID, &t.Name, &t.Realm, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return Tenant{}, fmt.Errorf("upsert tenant: %w", err)
	}
	return t, nil
}

var _ Store = (*PGStore)(nil)
