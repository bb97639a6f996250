package update_schedule_config

import (
	"time"

	"github.com/clearpath-advisory/booking-service/internal/service/schedule/models"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// DayItem HTTP model for one weekday's working window.
type DayItem struct {
	Weekday     int    `json:"weekday"` // 0=Sunday .. 6=Saturday
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// UpdateConfigRequest HTTP request model. Days absent from the list keep
// their stored configuration.
type UpdateConfigRequest struct {
	AppointmentDurationMinutes int       `json:"appointmentDurationMinutes"`
	BufferMinutes              int       `json:"bufferMinutes"`
	AdvanceBookingDays         int       `json:"advanceBookingDays"`
	Timezone                   string    `json:"timezone"`
	Days                       []DayItem `json:"days"`
}

// ToServiceRequest converts the HTTP request to the service model.
func (r *UpdateConfigRequest) ToServiceRequest() (*models.UpdateConfigRequest, error) {
	days := make([]models.DayConfig, 0, len(r.Days))
	for _, d := range r.Days {
		day := models.DayConfig{
			Weekday:     time.Weekday(d.Weekday),
			IsAvailable: d.IsAvailable,
		}
		if d.IsAvailable {
			start, err := types.NewTimeStringFromString(d.StartTime)
			if err != nil {
				return nil, err
			}
			end, err := types.NewTimeStringFromString(d.EndTime)
			if err != nil {
				return nil, err
			}
			day.StartTime = start
			day.EndTime = end
		}
		days = append(days, day)
	}

	return &models.UpdateConfigRequest{
		AppointmentDurationMinutes: r.AppointmentDurationMinutes,
		BufferMinutes:              r.BufferMinutes,
		AdvanceBookingDays:         r.AdvanceBookingDays,
		Timezone:                   r.Timezone,
		Days:                       days,
	}, nil
}
