package schedule

import "errors"

var (
	// ErrSettingsNotFound is returned when the admin settings row is missing.
	ErrSettingsNotFound = errors.New("schedule.repository: admin settings not found")

	// ErrBlockedDateNotFound is returned when a blocked date does not exist.
	ErrBlockedDateNotFound = errors.New("schedule.repository: blocked date not found")

	// ErrBuildQuery is returned when SQL generation fails.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
