package get_available_slots

import (
	"github.com/clearpath-advisory/booking-service/internal/domain"
	getAvailableSlots "github.com/clearpath-advisory/booking-service/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date               string   `json:"date"`
	Slots              []string `json:"slots"`
	DurationMinutes    int      `json:"durationMinutes"`
	CalendarConfigured bool     `json:"calendarConfigured"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}
	return &SlotsResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		Slots:              slots,
		DurationMinutes:    resp.DurationMinutes,
		CalendarConfigured: resp.CalendarConfigured,
	}
}
