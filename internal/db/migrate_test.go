package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"documents", "sisters"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Re-running the full migration list must be a no-op.
	require.NoError(t, Migrate(database))
}

func TestOpenDB_RejectsUnknownCollection(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(
		`INSERT INTO documents (user_id, collection, payload, updated_at) VALUES (?, ?, ?, ?)`,
		"u1", "bogus", "{}", "2025-06-15T00:00:00Z",
	)
	assert.Error(t, err, "collection CHECK constraint should reject unknown names")
}
