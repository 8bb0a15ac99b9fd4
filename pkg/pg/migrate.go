package pg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies schema migrations from an embedded filesystem using goose.
// Each service embeds its own migrations directory and runs this at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, dir string, log *slog.Logger) error {
	if migrations == nil {
		return errors.Join(ErrApplyMigrations, ErrNoMigrationsSource)
	}

	// goose speaks database/sql; bridge the pgx pool without opening a
	// second set of connections.
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close migration connection", slog.Any("error", err))
		}
	}()

	goose.SetLogger(&slogGooseAdapter{ctx: ctx, log: log})
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}
	return nil
}

// slogGooseAdapter routes goose's printf-style logging through slog.
type slogGooseAdapter struct {
	ctx context.Context
	log *slog.Logger
}

func (a *slogGooseAdapter) Fatalf(format string, v ...any) {
	a.log.ErrorContext(a.ctx, fmt.Sprintf(format, v...))
}

func (a *slogGooseAdapter) Printf(format string, v ...any) {
	a.log.InfoContext(a.ctx, fmt.Sprintf(format, v...))
}
