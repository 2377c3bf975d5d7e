package repository

import "errors"

// ErrNotFound reports a missing document or row. Callers check with
// errors.Is and decide whether absence is an error or a default case.
var ErrNotFound = errors.New("not found")
