package zoom

import "errors"

var (
	// ErrNotConfigured is returned when OAuth credentials are missing.
	ErrNotConfigured = errors.New("zoom client: credentials not configured")

	// ErrAuthFailed is returned when the client-credential exchange fails.
	// This is a hard error: booking must not proceed without a meeting.
	ErrAuthFailed = errors.New("zoom client: authentication failed")

	// ErrCreateFailed is returned when meeting creation fails.
	ErrCreateFailed = errors.New("zoom client: meeting creation failed")

	// ErrInvalidResponse is returned when the API answer cannot be decoded.
	ErrInvalidResponse = errors.New("zoom client: invalid response")
)
