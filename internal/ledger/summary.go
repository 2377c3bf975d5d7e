package ledger

import "github.com/ksaito/tctally/internal/domain"

// Summary aggregates unit totals and option counts over a set of entries.
type Summary struct {
	EntryCount   int
	TotalFull    int
	TotalHalf    int
	OptionCounts map[domain.Option]int
}

// Summarize sums unit counts and option flags across entries matching the
// predicate. A nil predicate matches everything. Pure aggregation, no
// mutation.
func (l *Ledger) Summarize(match func(domain.Entry) bool) Summary {
	s := Summary{OptionCounts: make(map[domain.Option]int, 3)}
	for _, e := range l.entries {
		if match != nil && !match(e) {
			continue
		}
		s.EntryCount++
		s.TotalFull += e.FullUnitCount
		s.TotalHalf += e.HalfUnitCount
		for _, opt := range domain.AllOptions() {
			if e.Options.Get(opt) {
				s.OptionCounts[opt]++
			}
		}
	}
	return s
}

// BySister returns a predicate matching entries assigned to the given sister.
func BySister(sisterID string) func(domain.Entry) bool {
	return func(e domain.Entry) bool {
		return e.SisterID == sisterID
	}
}
