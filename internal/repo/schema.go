package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/pkordes/travel-planner/backend/migrations"
)

// EnsureSchema creates the trips and feedback tables if they are missing.
//
// It applies any pending embedded migrations with goose. Each migration runs
// in a single transaction, so both tables are created together or not at all.
// Calling it on an up-to-date database changes nothing, and it never touches
// existing rows. Errors are returned as-is for the caller to decide whether
// startup should abort.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("repo.EnsureSchema: create provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("repo.EnsureSchema: %w", err)
	}
	return nil
}
