package reschedule_appointment

import (
	"time"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// Request identifies the appointment by its secret token and carries the
// new slot.
type Request struct {
	CancelToken  string
	NewDate      time.Time
	NewStartTime types.TimeString
}

// Response is the replacement appointment. The old token is dead; the new
// one controls the new appointment.
type Response struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	MeetingJoinURL  *string
	CancelToken     string
	RescheduledFrom int64
}
