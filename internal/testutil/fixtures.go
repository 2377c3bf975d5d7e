package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ksaito/tctally/internal/domain"
)

// FixedNow is the anchor timestamp fixtures hang off; tests that care about
// ordering derive offsets from it.
var FixedNow = time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)

// Entry options
type EntryOption func(*domain.Entry)

func WithTimes(start, end string) EntryOption {
	return func(e *domain.Entry) {
		e.StartTime = start
		e.EndTime = end
	}
}

func WithStoreInfo(info string) EntryOption {
	return func(e *domain.Entry) {
		e.StoreInfo = info
	}
}

func WithSisterID(id string) EntryOption {
	return func(e *domain.Entry) {
		e.SisterID = id
	}
}

func WithCreatedAt(at time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.CreatedAt = at
		e.Date = at.Format(domain.DateLayout)
	}
}

func WithUnitCounts(full, half int) EntryOption {
	return func(e *domain.Entry) {
		e.FullUnitCount = full
		e.HalfUnitCount = half
	}
}

func WithOptionOn(opt domain.Option) EntryOption {
	return func(e *domain.Entry) {
		_ = e.Options.Set(opt, true)
	}
}

// NewTestEntry builds an entry with sensible defaults: a two hour evening
// shift created at FixedNow.
func NewTestEntry(opts ...EntryOption) domain.Entry {
	e := domain.Entry{
		ID:        uuid.New().String(),
		Date:      FixedNow.Format(domain.DateLayout),
		StartTime: "20:00",
		EndTime:   "22:00",
		CreatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestSister builds a sister with a fresh id.
func NewTestSister(name string) *domain.Sister {
	return &domain.Sister{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: FixedNow,
	}
}
