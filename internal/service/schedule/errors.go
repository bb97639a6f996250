package schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed or out-of-bounds values.
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrBlockedDateNotFound is returned when removing a date that is not
	// blocked.
	ErrBlockedDateNotFound = errors.New("schedule: blocked date not found")

	// ErrInternal is returned for infrastructure failures.
	ErrInternal = errors.New("schedule: internal error")
)
