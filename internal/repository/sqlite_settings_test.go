package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ksaito/tctally/internal/db"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/repository"
	"github.com/ksaito/tctally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Get_NotFound(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsRepo_PutAndGet(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := domain.Settings{FullUnitMinutes: 90, HalfWindow: domain.HalfWindow{Start: 40, End: 80}}
	require.NoError(t, repo.Put(ctx, "u1", s, testutil.FixedNow))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 90, got.FullUnitMinutes)
	assert.Equal(t, 40, got.HalfWindow.Start)
	assert.Equal(t, 80, got.HalfWindow.End)
	assert.True(t, got.UpdatedAt.Equal(testutil.FixedNow))
}

func TestSettingsRepo_Put_Overwrites(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "u1", domain.DefaultSettings(), testutil.FixedNow))
	require.NoError(t, repo.Put(ctx, "u1",
		domain.Settings{FullUnitMinutes: 45, HalfWindow: domain.HalfWindow{Start: 20, End: 40}},
		testutil.FixedNow.Add(time.Minute)))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 45, got.FullUnitMinutes)
}

func TestSettingsRepo_Put_MergePreservesUnrelatedFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	// Seed a settings document that carries an extra field the calculator
	// does not own (the surrounding app stores more under this document).
	_, err := database.Exec(
		`INSERT INTO documents (user_id, collection, payload, updated_at) VALUES (?, ?, ?, ?)`,
		"u1", domain.CollectionSettings,
		`{"fullUnitMinutes":60,"halfUnitWindow":{"start":30,"end":59},"displayName":"aki"}`,
		testutil.FixedNow.Format(time.RFC3339),
	)
	require.NoError(t, err)

	require.NoError(t, repo.Put(ctx, "u1",
		domain.Settings{FullUnitMinutes: 90, HalfWindow: domain.HalfWindow{Start: 45, End: 80}},
		testutil.FixedNow.Add(time.Minute)))

	var payload string
	require.NoError(t, database.QueryRow(
		`SELECT payload FROM documents WHERE user_id = ? AND collection = ?`,
		"u1", domain.CollectionSettings,
	).Scan(&payload))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &doc))
	assert.JSONEq(t, `"aki"`, string(doc["displayName"]), "unrelated field must survive the save")
	assert.JSONEq(t, `90`, string(doc["fullUnitMinutes"]))
}

func TestSettingsRepo_PutInsideTx(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteSettingsRepo(tx)
		return txRepo.Put(ctx, "u1", domain.DefaultSettings(), testutil.FixedNow)
	})
	require.NoError(t, err)

	got, err := repository.NewSQLiteSettingsRepo(database).Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 60, got.FullUnitMinutes)
}
