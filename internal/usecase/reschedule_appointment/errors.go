package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrAppointmentNotFound is returned when no appointment matches the
	// token.
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAlreadyCancelled is returned when the original appointment was
	// cancelled earlier.
	ErrAlreadyCancelled = errors.New("reschedule_appointment: appointment already cancelled")

	// ErrAlreadyPast is returned when the original appointment's start
	// time has passed.
	ErrAlreadyPast = errors.New("reschedule_appointment: appointment already in the past")

	// ErrInternal is returned for infrastructure failures.
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
