package get_available_slots

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/internal/integrations/calendarfeed"
)

// AppointmentRepository provides the booked appointments for a date.
type AppointmentRepository interface {
	// ListActiveByDate returns non-cancelled appointments for a calendar date.
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository provides the weekly schedule, booking policy and
// blocked dates.
type ScheduleRepository interface {
	GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error)
	GetSettings(ctx context.Context) (*domain.AdminSettings, error)
	IsDateBlocked(ctx context.Context, date time.Time) (bool, error)
}

// CalendarGateway fetches externally-synced busy periods for a date.
// It never fails: a broken integration degrades to an unconfigured result.
type CalendarGateway interface {
	FetchBusyPeriods(ctx context.Context, date time.Time, loc *time.Location) calendarfeed.Result
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface required by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
