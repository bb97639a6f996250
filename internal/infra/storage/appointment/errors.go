package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches.
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery is returned when SQL generation fails.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
