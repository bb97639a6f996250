package get_schedule_config

import (
	"github.com/clearpath-advisory/booking-service/internal/service/schedule/models"
)

// DayItem HTTP model for one weekday's working window.
type DayItem struct {
	Weekday     int    `json:"weekday"` // 0=Sunday .. 6=Saturday
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// ConfigResponse HTTP response model
type ConfigResponse struct {
	AppointmentDurationMinutes int       `json:"appointmentDurationMinutes"`
	BufferMinutes              int       `json:"bufferMinutes"`
	AdvanceBookingDays         int       `json:"advanceBookingDays"`
	Timezone                   string    `json:"timezone"`
	Days                       []DayItem `json:"days"`
}

// FromServiceResponse converts the service response to the HTTP model.
func FromServiceResponse(resp *models.ConfigResponse) *ConfigResponse {
	days := make([]DayItem, 0, len(resp.Days))
	for _, d := range resp.Days {
		item := DayItem{
			Weekday:     int(d.Weekday),
			IsAvailable: d.IsAvailable,
		}
		if d.IsAvailable {
			item.StartTime = d.StartTime.String()
			item.EndTime = d.EndTime.String()
		}
		days = append(days, item)
	}
	return &ConfigResponse{
		AppointmentDurationMinutes: resp.AppointmentDurationMinutes,
		BufferMinutes:              resp.BufferMinutes,
		AdvanceBookingDays:         resp.AdvanceBookingDays,
		Timezone:                   resp.Timezone,
		Days:                       days,
	}
}
