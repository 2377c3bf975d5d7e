// Package ledger holds the in-memory ordered list of computed results.
// The ledger is pure state: it never performs I/O. Services load it from
// the repository, mutate it, and persist snapshots of it; on a failed
// persist they restore the previous snapshot.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/timecalc"
)

// ErrEntryNotFound reports an operation against an id the ledger does not hold.
var ErrEntryNotFound = errors.New("entry not found")

// UnitField selects which unit count a direct override targets.
type UnitField string

const (
	FieldFullUnits UnitField = "fullUnitCount"
	FieldHalfUnits UnitField = "halfUnitCount"
)

// Ledger owns an ordered sequence of entries for one session.
type Ledger struct {
	entries []domain.Entry
}

// New creates a ledger over the given entries. The slice is copied; the
// caller's backing array is never aliased.
func New(entries []domain.Entry) *Ledger {
	l := &Ledger{}
	l.entries = append(l.entries, entries...)
	return l
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in current list order.
func (l *Ledger) Entries() []domain.Entry {
	return append([]domain.Entry(nil), l.entries...)
}

// Snapshot returns a copy of the list suitable for persisting. Taking the
// snapshot at call time, rather than sharing the live slice, keeps an
// in-flight persist from observing later mutations.
func (l *Ledger) Snapshot() []domain.Entry {
	return l.Entries()
}

// Restore replaces the ledger's contents with a previously taken snapshot.
func (l *Ledger) Restore(snapshot []domain.Entry) {
	l.entries = append(l.entries[:0:0], snapshot...)
}

// Find returns the entry with the given id.
func (l *Ledger) Find(id string) (domain.Entry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Entry{}, false
}

func (l *Ledger) index(id string) int {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Append computes the entry's elapsed duration and default unit counts
// under the given settings, assigns the next display number (highest
// existing number plus one, or 1 when empty), and pushes it to the end.
// The caller supplies identity and timestamps.
func (l *Ledger) Append(e domain.Entry, settings domain.Settings) (domain.Entry, error) {
	el, err := timecalc.ComputeElapsed(e.StartTime, e.EndTime)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("computing elapsed time: %w", err)
	}
	u := timecalc.ComputeUnits(el.TotalMinutes, settings)

	e.Hours = el.Hours
	e.Minutes = el.Minutes
	e.TotalMinutes = el.TotalMinutes
	e.FullUnitCount = u.Full
	e.HalfUnitCount = u.Half
	e.Number = l.maxNumber() + 1

	l.entries = append(l.entries, e)
	return e, nil
}

func (l *Ledger) maxNumber() int {
	max := 0
	for _, e := range l.entries {
		if e.Number > max {
			max = e.Number
		}
	}
	return max
}

// EditTime rewrites an entry's label and time pair and recomputes every
// derived field under the settings active now, not the settings in effect
// when the entry was created. Options, id, number and list position are
// preserved; UpdatedAt is stamped.
func (l *Ledger) EditTime(id, storeInfo, startTime, endTime string, settings domain.Settings, now time.Time) (domain.Entry, error) {
	i := l.index(id)
	if i < 0 {
		return domain.Entry{}, fmt.Errorf("editing entry %s: %w", id, ErrEntryNotFound)
	}

	el, err := timecalc.ComputeElapsed(startTime, endTime)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("computing elapsed time: %w", err)
	}
	u := timecalc.ComputeUnits(el.TotalMinutes, settings)

	e := &l.entries[i]
	e.StoreInfo = storeInfo
	e.StartTime = startTime
	e.EndTime = endTime
	e.Hours = el.Hours
	e.Minutes = el.Minutes
	e.TotalMinutes = el.TotalMinutes
	e.FullUnitCount = u.Full
	e.HalfUnitCount = u.Half
	e.UpdatedAt = &now
	return *e, nil
}

// SetUnitCount overrides one unit count directly, with no recomputation.
// Negative values clamp to zero.
func (l *Ledger) SetUnitCount(id string, field UnitField, value int) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("setting %s on entry %s: %w", field, id, ErrEntryNotFound)
	}
	if value < 0 {
		value = 0
	}
	switch field {
	case FieldFullUnits:
		l.entries[i].FullUnitCount = value
	case FieldHalfUnits:
		l.entries[i].HalfUnitCount = value
	default:
		return fmt.Errorf("unknown unit field %q", field)
	}
	return nil
}

// ToggleOption sets one of the three boolean flags on an entry.
func (l *Ledger) ToggleOption(id string, opt domain.Option, on bool) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("toggling %s on entry %s: %w", opt, id, ErrEntryNotFound)
	}
	return l.entries[i].Options.Set(opt, on)
}

// Remove deletes the entry and renumbers the survivors.
func (l *Ledger) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("removing entry %s: %w", id, ErrEntryNotFound)
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	l.Renumber()
	return nil
}

// Renumber re-sorts the list newest-first by creation time and reassigns
// display numbers densely: the newest entry carries the highest number and
// the oldest carries 1. Idempotent.
func (l *Ledger) Renumber() {
	sort.SliceStable(l.entries, func(a, b int) bool {
		return l.entries[a].CreatedAt.After(l.entries[b].CreatedAt)
	})
	n := len(l.entries)
	for i := range l.entries {
		l.entries[i].Number = n - i
	}
}
