package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOpenConnection     = errors.New("pg: failed to open database connection")
	ErrParseConfig        = errors.New("pg: failed to parse connection config")
	ErrHealthcheckFailed  = errors.New("pg: healthcheck failed")
	ErrApplyMigrations    = errors.New("pg: failed to apply migrations")
	ErrNoMigrationsSource = errors.New("pg: migrations source not provided")
)

// IsNotFound reports pgx.ErrNoRows for uniform "not found" handling in stores.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKey reports a unique-constraint violation (SQLSTATE 23505), used
// by the directory to detect org-ID collisions on upsert races.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return err != nil && errors.As(err, &pgErr) && pgErr.Code == "23505"
}
