package list_appointments

import (
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/internal/service/appointments/models"
)

// AppointmentItem HTTP response model for one appointment in the
// operator list. The cancel token is never exposed here.
type AppointmentItem struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	MeetingJoinURL  *string `json:"meetingJoinUrl,omitempty"`
	Reminder24hSent bool    `json:"reminder24hSent"`
	Reminder1hSent  bool    `json:"reminder1hSent"`
	SourceRef       *string `json:"sourceRef,omitempty"`
	RescheduledFrom *int64  `json:"rescheduledFrom,omitempty"`
	CancelledAt     *string `json:"cancelledAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Appointments []AppointmentItem `json:"appointments"`
	Total        int               `json:"total"`
}

// FromServiceList converts the service responses to the HTTP model.
func FromServiceList(appts []*models.AppointmentResponse) *ListResponse {
	items := make([]AppointmentItem, 0, len(appts))
	for _, a := range appts {
		item := AppointmentItem{
			ID:              a.ID,
			Date:            a.Date.Format(domain.DateFormat),
			StartTime:       a.StartTime.String(),
			DurationMinutes: a.DurationMinutes,
			Status:          a.Status,
			GuestName:       a.GuestName,
			GuestEmail:      a.GuestEmail,
			GuestPhone:      a.GuestPhone,
			Notes:           a.Notes,
			MeetingJoinURL:  a.MeetingJoinURL,
			Reminder24hSent: a.Reminder24hSent,
			Reminder1hSent:  a.Reminder1hSent,
			SourceRef:       a.SourceRef,
			RescheduledFrom: a.RescheduledFrom,
			CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		}
		if a.CancelledAt != nil {
			cancelled := a.CancelledAt.Format(time.RFC3339)
			item.CancelledAt = &cancelled
		}
		items = append(items, item)
	}
	return &ListResponse{
		Appointments: items,
		Total:        len(items),
	}
}
