package get_available_slots

import (
	"time"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// Request carries the target calendar date.
type Request struct {
	Date time.Time
}

// Response lists the bookable slot start times for the date, ascending.
// CalendarConfigured reports whether the external calendar contributed to
// the result; when false the slots were computed from internal data only.
type Response struct {
	Date               time.Time
	Slots              []types.TimeString
	DurationMinutes    int
	CalendarConfigured bool
}

// DateCheckResponse is the lightweight availability verdict for a date.
type DateCheckResponse struct {
	Date      time.Time
	Available bool
}
