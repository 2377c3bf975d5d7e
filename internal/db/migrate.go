package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// the full list re-runs on each startup; "duplicate column name" errors
// from ALTER TABLE statements on already-migrated databases are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One document per (user, collection). Result documents hold the full
	// entry array as JSON and are rewritten whole on every mutation; the
	// settings document holds the threshold object.
	`CREATE TABLE IF NOT EXISTS documents (
		user_id    TEXT NOT NULL,
		collection TEXT NOT NULL
		           CHECK(collection IN ('results','results_simple','settings')),
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, collection)
	)`,

	`CREATE TABLE IF NOT EXISTS sisters (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sisters_user ON sisters(user_id)`,
}
