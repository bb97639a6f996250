package create_appointment

import (
	"time"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// Request carries the guest's booking details.
//
// ExcludeAppointmentID, RescheduledFrom and SkipConfirmation are internal
// knobs used by the reschedule flow; HTTP handlers never set them.
type Request struct {
	Date       time.Time
	StartTime  types.TimeString
	GuestName  string
	GuestEmail string
	GuestPhone *string
	Notes      *string
	SourceRef  *string

	ExcludeAppointmentID *int64
	RescheduledFrom      *int64
	SkipConfirmation     bool
}

// Response is the created appointment as seen by the guest.
type Response struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	GuestName       string
	GuestEmail      string
	MeetingJoinURL  *string
	CancelToken     string
	CreatedAt       time.Time
}
