package testutil

import (
	"database/sql"
	"testing"

	"github.com/ksaito/tctally/internal/db"
)

// NewTestDB opens a fully migrated in-memory SQLite database and closes
// it when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in a UnitOfWork for transactional
// service tests.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
