package timecalc

import "github.com/ksaito/tctally/internal/domain"

// Units is a billable count: whole units plus at most one half unit.
type Units struct {
	Full int
	Half int
}

// ComputeUnits converts an elapsed duration into billable units under the
// given settings. Full units are consumed greedily while the remaining
// minutes exceed the half-window's upper bound; each consumption removes
// one FullUnitMinutes chunk, so inconsistent settings can leave the
// remainder negative. After that, the remainder yields exactly one half
// unit iff it falls inside the half window, inclusive on both ends.
//
// A non-positive FullUnitMinutes produces no full units instead of
// looping forever; Settings.Validate rejects such settings at the save
// boundary, but stored documents are taken as-is on load.
func ComputeUnits(totalMinutes int, s domain.Settings) Units {
	var u Units
	remaining := totalMinutes

	if s.FullUnitMinutes > 0 {
		for remaining > s.HalfWindow.End {
			u.Full++
			remaining -= s.FullUnitMinutes
		}
	}

	if remaining >= s.HalfWindow.Start && remaining <= s.HalfWindow.End {
		u.Half = 1
	}
	return u
}
