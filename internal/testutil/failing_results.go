package testutil

import (
	"context"
	"time"

	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/repository"
)

// FailingResultRepo wraps a real ResultRepo and injects an error on Save
// after AllowSaves successful calls. Loads pass through. This enables
// rollback tests that fail persistence at precise points.
type FailingResultRepo struct {
	Inner      repository.ResultRepo
	AllowSaves int
	Err        error

	saves int
}

func (f *FailingResultRepo) Load(ctx context.Context, userID, collection string) ([]domain.Entry, error) {
	return f.Inner.Load(ctx, userID, collection)
}

func (f *FailingResultRepo) Save(ctx context.Context, userID, collection string, entries []domain.Entry, now time.Time) error {
	f.saves++
	if f.saves > f.AllowSaves {
		return f.Err
	}
	return f.Inner.Save(ctx, userID, collection, entries, now)
}
