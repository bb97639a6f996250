package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrSlotNotAvailable is returned when the requested slot is not among
	// the currently bookable slots (taken, blocked, out of window).
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrMeetingProvisioning is returned when the video meeting could not
	// be created; the appointment is not persisted in that case.
	ErrMeetingProvisioning = errors.New("create_appointment: failed to provision meeting")

	// ErrInternal is returned for infrastructure failures.
	ErrInternal = errors.New("create_appointment: internal error")
)
