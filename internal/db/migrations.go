package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/db/migrations"
)

var (
	gooseSetup    sync.Once
	gooseSetupErr error
)

// ApplyMigrations brings the schema up to date. It is safe to call on every
// open; goose skips versions that were already applied.
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	gooseSetup.Do(func() {
		goose.SetBaseFS(migrations.Files)
		goose.SetLogger(goose.NopLogger())
		gooseSetupErr = goose.SetDialect("sqlite3")
	})
	if gooseSetupErr != nil {
		return fmt.Errorf("set goose dialect: %w", gooseSetupErr)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply schema migrations: %w", err)
	}
	return nil
}
