package domain

import "fmt"

// Mode selects which result document a session reads and writes.
type Mode string

const (
	ModeSimple Mode = "simple"
	ModePro    Mode = "pro"
)

// Collection names of the three per-user documents in the store.
const (
	CollectionResults       = "results"
	CollectionResultsSimple = "results_simple"
	CollectionSettings      = "settings"
)

// ParseMode parses a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSimple, ModePro:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeSimple, ModePro)
}

// Collection returns the result document collection for this mode.
func (m Mode) Collection() string {
	if m == ModePro {
		return CollectionResults
	}
	return CollectionResultsSimple
}

// Option is one of the three per-entry boolean flags.
type Option string

const (
	OptionTransportFee Option = "transportFee"
	OptionNomination   Option = "nomination"
	OptionNoShow       Option = "noShow"
)

// AllOptions lists the options in display order.
func AllOptions() []Option {
	return []Option{OptionTransportFee, OptionNomination, OptionNoShow}
}

// ParseOption parses a user-supplied option name.
func ParseOption(s string) (Option, error) {
	switch Option(s) {
	case OptionTransportFee, OptionNomination, OptionNoShow:
		return Option(s), nil
	}
	return "", fmt.Errorf("unknown option %q", s)
}
