package domain

import (
	"fmt"
	"time"
)

// HalfWindow is the inclusive range of remaining minutes, after full units
// have been consumed, that counts as exactly one half unit.
type HalfWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Settings holds the two tunable thresholds that govern unit counting.
// One settings document exists per user; a user who never saves keeps
// the in-memory defaults and no document is created.
type Settings struct {
	FullUnitMinutes int        `json:"fullUnitMinutes"`
	HalfWindow      HalfWindow `json:"halfUnitWindow"`
	UpdatedAt       time.Time  `json:"updatedAt,omitzero"`
}

// DefaultSettings returns the thresholds applied when no settings
// document exists for the user.
func DefaultSettings() Settings {
	return Settings{
		FullUnitMinutes: 60,
		HalfWindow:      HalfWindow{Start: 30, End: 59},
	}
}

// Validate enforces the threshold relationship at the save boundary:
// a non-positive full-unit duration would make unit counting diverge,
// and the half window must sit inside one full unit.
func (s Settings) Validate() error {
	if s.FullUnitMinutes <= 0 {
		return fmt.Errorf("full unit minutes must be positive, got %d", s.FullUnitMinutes)
	}
	if s.HalfWindow.Start < 0 {
		return fmt.Errorf("half window start must not be negative, got %d", s.HalfWindow.Start)
	}
	if s.HalfWindow.End < s.HalfWindow.Start {
		return fmt.Errorf("half window end %d is before start %d", s.HalfWindow.End, s.HalfWindow.Start)
	}
	if s.HalfWindow.End >= s.FullUnitMinutes {
		return fmt.Errorf("half window end %d must be below full unit minutes %d", s.HalfWindow.End, s.FullUnitMinutes)
	}
	return nil
}
