package service

import (
	"context"
	"testing"

	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/repository"
	"github.com/ksaito/tctally/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) (SettingsService, repository.SettingsRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSettingsRepo(database)
	svc := NewSettingsService(repo, testutil.NewTestUoW(database), zerolog.Nop())
	return svc, repo
}

func TestSettingsService_Load_AbsentReturnsDefaults(t *testing.T) {
	svc, repo := newSettingsService(t)
	ctx := context.Background()

	got := svc.Load(ctx, "u1")
	assert.Equal(t, domain.DefaultSettings(), got)

	// The default is in-memory only: loading must not create a document.
	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsService_SaveAndLoad(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	s := domain.Settings{FullUnitMinutes: 90, HalfWindow: domain.HalfWindow{Start: 45, End: 80}}
	require.NoError(t, svc.Save(ctx, "u1", s))

	got := svc.Load(ctx, "u1")
	assert.Equal(t, 90, got.FullUnitMinutes)
	assert.Equal(t, domain.HalfWindow{Start: 45, End: 80}, got.HalfWindow)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	svc, repo := newSettingsService(t)
	ctx := context.Background()

	err := svc.Save(ctx, "u1", domain.Settings{FullUnitMinutes: 0})
	assert.Error(t, err)

	// Validation failure happens before any write.
	_, err = repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
