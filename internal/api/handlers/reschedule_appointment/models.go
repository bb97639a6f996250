package reschedule_appointment

import (
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	rescheduleAppointment "github.com/clearpath-advisory/booking-service/internal/usecase/reschedule_appointment"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// RescheduleRequest HTTP request model. The token travels in the body,
// not the URL, to keep it out of access logs.
type RescheduleRequest struct {
	CancelToken  string `json:"cancelToken"`
	NewDate      string `json:"newDate"`      // "2026-09-22"
	NewStartTime string `json:"newStartTime"` // "14:00"
}

// RescheduleResponse HTTP response model. The old cancel token is dead;
// callers must store the new one.
type RescheduleResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	MeetingJoinURL  *string `json:"meetingJoinUrl,omitempty"`
	CancelToken     string  `json:"cancelToken"`
	RescheduledFrom int64   `json:"rescheduledFrom"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *RescheduleRequest) ToUseCaseRequest() (*rescheduleAppointment.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStart, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		CancelToken:  r.CancelToken,
		NewDate:      newDate,
		NewStartTime: newStart,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleResponse {
	return &RescheduleResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		MeetingJoinURL:  resp.MeetingJoinURL,
		CancelToken:     resp.CancelToken,
		RescheduledFrom: resp.RescheduledFrom,
	}
}
