package domain

import (
	"time"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// StatusPending is reserved for flows that require later confirmation.
	StatusPending AppointmentStatus = "pending"
	// StatusConfirmed is the normal state after a successful booking.
	StatusConfirmed AppointmentStatus = "confirmed"
	// StatusCancelled is terminal.
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked consultation with a guest.
type Appointment struct {
	ID int64

	GuestName  string
	GuestEmail string
	GuestPhone *string

	Date            time.Time // calendar date, time part ignored
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	MeetingID      *string
	MeetingJoinURL *string

	// CancelToken is a bearer secret enabling unauthenticated self-service
	// cancel/reschedule. Equality lookup only.
	CancelToken string

	Reminder24hSent bool
	Reminder1hSent  bool

	// SourceRef links to the assessment or BOS-builder submission that led
	// to this booking. Provenance only.
	SourceRef *string

	// RescheduledFrom points at the cancelled appointment this one replaced.
	// Rescheduling never mutates date/time in place.
	RescheduledFrom *int64

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the appointment still holds its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled reports whether a cancel transition is allowed.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// StartInstant combines the calendar date and start time into an absolute
// instant in the business timezone.
func (a *Appointment) StartInstant(loc *time.Location) time.Time {
	mins := a.StartTime.Minutes()
	if mins < 0 {
		mins = 0
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(mins) * time.Minute)
}

// EndTime returns the time of day at which the appointment ends.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// AppointmentsFilter narrows appointment listings.
type AppointmentsFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool // include cancelled appointments
}
