package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sisters (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`,
			"s1", "u1", "Aoi", "2025-06-15T00:00:00Z")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sisters`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()
	boom := errors.New("boom")

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sisters (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`,
			"s1", "u1", "Aoi", "2025-06-15T00:00:00Z"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sisters`).Scan(&count))
	assert.Equal(t, 0, count, "insert should have been rolled back")
}
