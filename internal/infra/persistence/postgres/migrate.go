package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies any pending schema migrations. Migrations are embedded in
// the binary so deployment needs no extra artifacts.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	if logger != nil {
		logger.Info("Database schema up to date", slog.Int64("version", version))
	}

	return nil
}
