package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/ledger"
	"github.com/ksaito/tctally/internal/repository"
	"github.com/ksaito/tctally/internal/timecalc"
	"github.com/rs/zerolog"
)

type ledgerService struct {
	results repository.ResultRepo
	sisters repository.SisterRepo
	log     zerolog.Logger
	now     func() time.Time
	strict  bool
}

// NewLedgerService creates a LedgerService. Sessions opened from it apply
// strict time-input validation when strict is true (the surface whose time
// picker uses "00:00" as its unset placeholder).
func NewLedgerService(results repository.ResultRepo, sisters repository.SisterRepo, strict bool, log zerolog.Logger) LedgerService {
	return &ledgerService{
		results: results,
		sisters: sisters,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
		strict:  strict,
	}
}

// Open loads the user's result document for the mode and returns a live
// session. A missing document starts an empty ledger; a broken store also
// degrades to an empty ledger (logged), matching the soft-fail load rule.
func (s *ledgerService) Open(ctx context.Context, userID string, mode domain.Mode, settings domain.Settings) (*LedgerSession, error) {
	entries, err := s.results.Load(ctx, userID, mode.Collection())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.log.Warn().Err(err).Str("user", userID).Str("mode", string(mode)).
			Msg("loading results failed, starting with empty ledger")
		entries = nil
	}

	l := ledger.New(entries)
	l.Renumber()

	return &LedgerSession{
		userID:   userID,
		mode:     mode,
		settings: settings,
		ledger:   l,
		results:  s.results,
		sisters:  s.sisters,
		log:      s.log,
		now:      s.now,
		strict:   s.strict,
	}, nil
}

// LedgerSession is the per-session state the calculator operates on: the
// active settings plus the in-memory ledger for one (user, mode) pair.
// Mutating operations apply to the ledger first, then persist the whole
// list; the mutex serializes persists in mutation order so rapid edits
// cannot race each other at the storage layer. On persist failure the
// in-memory mutation is rolled back and the error returned.
type LedgerSession struct {
	userID   string
	mode     domain.Mode
	settings domain.Settings
	ledger   *ledger.Ledger
	results  repository.ResultRepo
	sisters  repository.SisterRepo
	log      zerolog.Logger
	now      func() time.Time
	strict   bool

	mu sync.Mutex
}

// CalculateInput carries the user-entered fields of one calculation.
type CalculateInput struct {
	StoreInfo string
	SisterID  string
	StartTime string
	EndTime   string
}

// Mode returns the session's mode.
func (s *LedgerSession) Mode() domain.Mode { return s.mode }

// Settings returns the settings the session computes under.
func (s *LedgerSession) Settings() domain.Settings { return s.settings }

// SetStrict toggles strict time-input validation for this session.
func (s *LedgerSession) SetStrict(strict bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strict = strict
}

// UpdateSettings swaps the settings used for subsequent computations.
// Existing entries keep their snapshots; nothing is recomputed.
func (s *LedgerSession) UpdateSettings(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Entries returns the current entries in list order.
func (s *LedgerSession) Entries() []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Entries()
}

// Find returns one entry by id.
func (s *LedgerSession) Find(id string) (domain.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Find(id)
}

// Summary aggregates unit totals and option counts, scoped to one sister
// when sisterID is non-empty.
func (s *LedgerSession) Summary(sisterID string) ledger.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sisterID != "" {
		return s.ledger.Summarize(ledger.BySister(sisterID))
	}
	return s.ledger.Summarize(nil)
}

// Calculate validates the input, computes elapsed time and units under the
// session settings, appends the entry, and persists the ledger. The entry
// is durable only once Calculate returns nil error.
func (s *LedgerSession) Calculate(ctx context.Context, in CalculateInput) (domain.Entry, error) {
	if err := timecalc.ValidateTimeInputs(in.StartTime, in.EndTime, s.strict); err != nil {
		return domain.Entry{}, err
	}

	e := domain.Entry{
		ID:        uuid.New().String(),
		StoreInfo: in.StoreInfo,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if s.mode == domain.ModePro {
		if in.SisterID != "" {
			sister, err := s.sisters.GetByID(ctx, in.SisterID)
			if err != nil {
				return domain.Entry{}, fmt.Errorf("resolving sister: %w", err)
			}
			e.SisterID = sister.ID
			e.Sister = sister
		}
	} else if in.SisterID != "" {
		return domain.Entry{}, fmt.Errorf("sister assignment requires pro mode")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e.CreatedAt = now
	e.Date = now.Format(domain.DateLayout)

	snapshot := s.ledger.Snapshot()
	appended, err := s.ledger.Append(e, s.settings)
	if err != nil {
		return domain.Entry{}, err
	}
	if err := s.persistLocked(ctx); err != nil {
		s.ledger.Restore(snapshot)
		return domain.Entry{}, err
	}
	return appended, nil
}

// EditEntryTime rewrites an entry's label and time pair, recomputing all
// derived fields under the session's current settings.
func (s *LedgerSession) EditEntryTime(ctx context.Context, id, storeInfo, startTime, endTime string) (domain.Entry, error) {
	if err := timecalc.ValidateTimeInputs(startTime, endTime, s.strict); err != nil {
		return domain.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.ledger.Snapshot()
	edited, err := s.ledger.EditTime(id, storeInfo, startTime, endTime, s.settings, s.now())
	if err != nil {
		return domain.Entry{}, err
	}
	if err := s.persistLocked(ctx); err != nil {
		s.ledger.Restore(snapshot)
		return domain.Entry{}, err
	}
	return edited, nil
}

// SetUnitCount overrides one unit count directly.
func (s *LedgerSession) SetUnitCount(ctx context.Context, id string, field ledger.UnitField, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.ledger.Snapshot()
	if err := s.ledger.SetUnitCount(id, field, value); err != nil {
		return err
	}
	if err := s.persistLocked(ctx); err != nil {
		s.ledger.Restore(snapshot)
		return err
	}
	return nil
}

// ToggleOption flips one of the three flags on an entry.
func (s *LedgerSession) ToggleOption(ctx context.Context, id string, opt domain.Option, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.ledger.Snapshot()
	if err := s.ledger.ToggleOption(id, opt, on); err != nil {
		return err
	}
	if err := s.persistLocked(ctx); err != nil {
		s.ledger.Restore(snapshot)
		return err
	}
	return nil
}

// Remove deletes an entry and renumbers the survivors.
func (s *LedgerSession) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.ledger.Snapshot()
	if err := s.ledger.Remove(id); err != nil {
		return err
	}
	if err := s.persistLocked(ctx); err != nil {
		s.ledger.Restore(snapshot)
		return err
	}
	return nil
}

// persistLocked writes the whole ledger to the mode's document. The
// snapshot is taken at call time, so a slow write cannot observe later
// mutations. Caller holds s.mu.
func (s *LedgerSession) persistLocked(ctx context.Context) error {
	snap := s.ledger.Snapshot()
	if err := s.results.Save(ctx, s.userID, s.mode.Collection(), snap, s.now()); err != nil {
		s.log.Error().Err(err).Str("user", s.userID).Str("mode", string(s.mode)).
			Msg("persisting results failed, rolling back")
		return fmt.Errorf("saving results: %w", err)
	}
	return nil
}
