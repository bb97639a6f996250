package models

import (
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// DayConfig is one weekday's working window.
type DayConfig struct {
	Weekday     time.Weekday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// UpdateConfigRequest replaces the booking policy and any listed days.
// Days absent from Days keep their current configuration.
type UpdateConfigRequest struct {
	AppointmentDurationMinutes int
	BufferMinutes              int
	AdvanceBookingDays         int
	Timezone                   string
	Days                       []DayConfig
}

// ConfigResponse is the full schedule configuration.
type ConfigResponse struct {
	AppointmentDurationMinutes int
	BufferMinutes              int
	AdvanceBookingDays         int
	Timezone                   string
	Days                       []DayConfig
}

// BlockedDateResponse is one blocked calendar date.
type BlockedDateResponse struct {
	ID     int64
	Date   time.Time
	Reason *string
}

// FromDomain assembles the response from the stored schedule and settings.
func FromDomain(settings *domain.AdminSettings, weekly domain.WeeklySchedule) *ConfigResponse {
	resp := &ConfigResponse{
		AppointmentDurationMinutes: settings.AppointmentDurationMinutes,
		BufferMinutes:              settings.BufferMinutes,
		AdvanceBookingDays:         settings.AdvanceBookingDays,
		Timezone:                   settings.Timezone,
		Days:                       make([]DayConfig, 0, 7),
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		wh := weekly.ForWeekday(d)
		resp.Days = append(resp.Days, DayConfig{
			Weekday:     d,
			StartTime:   wh.StartTime,
			EndTime:     wh.EndTime,
			IsAvailable: wh.IsAvailable,
		})
	}
	return resp
}

// FromDomainBlockedDate converts one blocked date.
func FromDomainBlockedDate(bd *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:     bd.ID,
		Date:   bd.Date,
		Reason: bd.Reason,
	}
}
