package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SchemaVersion is stored in PRAGMA user_version. Bumping it drops and
// recreates the Items table on next open.
const SchemaVersion = 1

const createItemsTable = `
	CREATE TABLE IF NOT EXISTS Items (
		ID TEXT NOT NULL,
		Label TEXT NOT NULL,
		Color INTEGER NOT NULL,
		ImageUrl TEXT NOT NULL
	)
`

// runMigrations creates the Items table, rebuilding it when the stored
// schema version differs from SchemaVersion
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version == SchemaVersion {
		_, err := db.ExecContext(ctx, createItemsTable)
		return err
	}

	slog.Info("rebuilding items table", "from_version", version, "to_version", SchemaVersion)
	return withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS Items"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, createItemsTable); err != nil {
			return err
		}
		// PRAGMA does not accept bound parameters
		_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion))
		return err
	})
}
