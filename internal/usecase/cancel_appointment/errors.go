package cancel_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("cancel_appointment: invalid input data")

	// ErrAppointmentNotFound is returned when no appointment matches the
	// token. Deliberately indistinguishable from a guessed token.
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrAlreadyCancelled is returned when the appointment was cancelled
	// earlier.
	ErrAlreadyCancelled = errors.New("cancel_appointment: appointment already cancelled")

	// ErrAlreadyPast is returned when the appointment's start time has
	// passed.
	ErrAlreadyPast = errors.New("cancel_appointment: appointment already in the past")

	// ErrInternal is returned for infrastructure failures.
	ErrInternal = errors.New("cancel_appointment: internal error")
)
