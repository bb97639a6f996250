package domain

import (
	"time"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// WorkingHours is the weekly availability for one day of the week.
// There is at most one record per weekday.
type WorkingHours struct {
	ID          int64
	Weekday     time.Weekday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// WeeklySchedule holds the full set of working-hours records.
type WeeklySchedule []WorkingHours

// ForWeekday returns the record for the given weekday. A missing record is
// treated as an unavailable day.
func (s WeeklySchedule) ForWeekday(d time.Weekday) WorkingHours {
	for _, wh := range s {
		if wh.Weekday == d {
			return wh
		}
	}
	return WorkingHours{Weekday: d, IsAvailable: false}
}

// AdminSettings is the process-wide booking policy singleton.
type AdminSettings struct {
	ID                         int64
	AppointmentDurationMinutes int
	BufferMinutes              int
	AdvanceBookingDays         int
	Timezone                   string // IANA zone name
	UpdatedAt                  time.Time
}

// SlotStride returns the spacing between candidate slot starts.
func (s *AdminSettings) SlotStride() int {
	return s.AppointmentDurationMinutes + s.BufferMinutes
}

// Location resolves the configured IANA timezone.
func (s *AdminSettings) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// BlockedDate removes a specific calendar date from offer, independent of
// the weekly schedule.
type BlockedDate struct {
	ID     int64
	Date   time.Time
	Reason *string
}
