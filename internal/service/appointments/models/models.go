package models

import (
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// ListRequest filters the operator appointment list.
type ListRequest struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// AppointmentResponse is the operator's view of one appointment. It
// includes contact details and reminder state but never the cancel token.
type AppointmentResponse struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	GuestName       string
	GuestEmail      string
	GuestPhone      *string
	Notes           *string
	MeetingJoinURL  *string
	Reminder24hSent bool
	Reminder1hSent  bool
	SourceRef       *string
	RescheduledFrom *int64
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FromDomain converts a domain appointment.
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		GuestName:       appt.GuestName,
		GuestEmail:      appt.GuestEmail,
		GuestPhone:      appt.GuestPhone,
		Notes:           appt.Notes,
		MeetingJoinURL:  appt.MeetingJoinURL,
		Reminder24hSent: appt.Reminder24hSent,
		Reminder1hSent:  appt.Reminder1hSent,
		SourceRef:       appt.SourceRef,
		RescheduledFrom: appt.RescheduledFrom,
		CancelledAt:     appt.CancelledAt,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

// FromDomainList converts a slice of domain appointments.
func FromDomainList(appts []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		out = append(out, FromDomain(appt))
	}
	return out
}
