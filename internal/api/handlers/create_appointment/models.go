package create_appointment

import (
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	createAppointment "github.com/clearpath-advisory/booking-service/internal/usecase/create_appointment"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date       string  `json:"date"`      // "2026-09-15"
	StartTime  string  `json:"startTime"` // "10:30"
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	SourceRef  *string `json:"sourceRef,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	GuestName       string  `json:"guestName"`
	MeetingJoinURL  *string `json:"meetingJoinUrl,omitempty"`
	CancelToken     string  `json:"cancelToken"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Date:       date,
		StartTime:  startTime,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		Notes:      r.Notes,
		SourceRef:  r.SourceRef,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		GuestName:       resp.GuestName,
		MeetingJoinURL:  resp.MeetingJoinURL,
		CancelToken:     resp.CancelToken,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
