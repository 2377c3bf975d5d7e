package service

import (
	"context"

	"github.com/ksaito/tctally/internal/domain"
)

// SettingsService loads and saves the per-user unit-counting thresholds.
type SettingsService interface {
	// Load returns the stored settings, or the in-memory defaults when the
	// user never saved any. Defaults are not written back on load.
	Load(ctx context.Context, userID string) domain.Settings
	// Save validates and persists the settings with merge semantics.
	Save(ctx context.Context, userID string, s domain.Settings) error
}

// SisterService manages the sub-entities pro-mode entries reference.
type SisterService interface {
	Create(ctx context.Context, userID, name string) (*domain.Sister, error)
	List(ctx context.Context, userID string) ([]*domain.Sister, error)
	Delete(ctx context.Context, id string) error
}

// LedgerService opens one calculator session per (user, mode) pair.
type LedgerService interface {
	Open(ctx context.Context, userID string, mode domain.Mode, settings domain.Settings) (*LedgerSession, error)
}
