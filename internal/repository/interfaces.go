package repository

import (
	"context"
	"time"

	"github.com/ksaito/tctally/internal/domain"
)

// ResultRepo is the gateway for the per-user result documents. Each mode
// maps to one document holding the full entry array; every save rewrites
// that document whole. Expected list sizes are tens of entries per user,
// so the simplicity of a single-document rewrite wins over incremental
// updates.
type ResultRepo interface {
	// Load returns the stored entry array verbatim, with no schema
	// migration. Wraps ErrNotFound when the user has no document yet.
	Load(ctx context.Context, userID, collection string) ([]domain.Entry, error)
	// Save overwrites the document with the given entries.
	Save(ctx context.Context, userID, collection string, entries []domain.Entry, now time.Time) error
}

// SettingsRepo is the gateway for the per-user settings document.
type SettingsRepo interface {
	// Get wraps ErrNotFound when the user never saved settings.
	Get(ctx context.Context, userID string) (domain.Settings, error)
	// Put writes the settings with merge semantics: unrelated fields
	// stored under the same document survive the write.
	Put(ctx context.Context, userID string, s domain.Settings, now time.Time) error
}

// SisterRepo stores the sub-entities pro-mode entries are partitioned by.
type SisterRepo interface {
	Create(ctx context.Context, userID string, s *domain.Sister) error
	GetByID(ctx context.Context, id string) (*domain.Sister, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Sister, error)
	Delete(ctx context.Context, id string) error
}
