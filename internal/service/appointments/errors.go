package appointments

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrAppointmentNotFound is returned when the appointment does not
	// exist.
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInternal is returned for infrastructure failures.
	ErrInternal = errors.New("appointments: internal error")
)
