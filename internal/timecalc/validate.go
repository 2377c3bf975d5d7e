package timecalc

import "errors"

// The two calculator surfaces disagree about "00:00": one treats it as a
// legitimate midnight time, the other as the unset placeholder of its time
// picker. Strictness is therefore a caller-supplied flag, never a global.
const placeholderTime = "00:00"

var (
	// ErrTimeRequired reports a missing start or end time.
	ErrTimeRequired = errors.New("start and end times are required")
	// ErrPlaceholderTime reports the "00:00" placeholder in strict mode.
	ErrPlaceholderTime = errors.New("time has not been selected")
)

// ValidateTimeInputs rejects missing inputs, and in strict mode also the
// "00:00" placeholder. It reports the failure without mutating anything;
// callers run it before any computation or write.
func ValidateTimeInputs(startTime, endTime string, strict bool) error {
	if startTime == "" || endTime == "" {
		return ErrTimeRequired
	}
	if strict && (startTime == placeholderTime || endTime == placeholderTime) {
		return ErrPlaceholderTime
	}
	return nil
}
