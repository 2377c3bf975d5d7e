// Package timecalc holds the pure arithmetic behind the calculator:
// wall-clock elapsed time and billable unit counting. Functions here never
// touch storage and never depend on session state; callers validate inputs
// first and pass the active settings in.
package timecalc

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// Elapsed is the duration between a start and end wall-clock time.
type Elapsed struct {
	Hours        int
	Minutes      int
	TotalMinutes int
}

// ParseClock parses an "HH:MM" 24-hour wall-clock string into minutes of day.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("clock time %q is not in HH:MM form", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("clock time %q: bad hour: %w", s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("clock time %q: bad minute: %w", s, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock time %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q: minute out of range", s)
	}
	return hour*60 + minute, nil
}

// ComputeElapsed returns the elapsed duration between two HH:MM times.
// A negative raw difference means the end falls on the following day and
// gets a full day added. Identical start and end means a full 24-hour
// span, not zero: same-time bookings read as "worked all day".
func ComputeElapsed(startTime, endTime string) (Elapsed, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return Elapsed{}, fmt.Errorf("parsing start time: %w", err)
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return Elapsed{}, fmt.Errorf("parsing end time: %w", err)
	}

	total := end - start
	if total < 0 {
		total += minutesPerDay
	}
	if total == 0 {
		total = minutesPerDay
	}

	return Elapsed{
		Hours:        total / 60,
		Minutes:      total % 60,
		TotalMinutes: total,
	}, nil
}
