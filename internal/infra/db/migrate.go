package db

import (
	"context"
	"embed"
	"log/slog"

	"groomly/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies pending migrations from the embedded filesystem. Goose
// works against database/sql, so a throwaway *sql.DB is opened off the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set goose dialect")
	}
	goose.SetBaseFS(migrationsFS)

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close migration connection", "error", err)
		}
	}()

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errs.Wrap(err, "failed to read migration version")
	}
	slog.Info("migrations applied", "version", version)
	return nil
}
