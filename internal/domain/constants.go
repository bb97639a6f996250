package domain

// Default booking policy, used until admin settings are configured.
const (
	DefaultAppointmentDurationMinutes = 30
	DefaultBufferMinutes              = 15
	DefaultAdvanceBookingDays         = 30
	DefaultTimezone                   = "America/New_York"
)

// Business validation bounds.
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480 // 8 hours
	MinBufferMinutes              = 0
	MaxBufferMinutes              = 240
	MinAdvanceBookingDays         = 1
	MaxAdvanceBookingDays         = 365
	MaxNotesLength                = 500
	MaxGuestNameLength            = 200
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
