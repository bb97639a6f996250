package schedule

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
)

// ScheduleRepository persists the weekly schedule, policy settings and
// blocked dates.
type ScheduleRepository interface {
	GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error)
	UpsertWorkingHours(ctx context.Context, wh domain.WorkingHours) error
	GetSettings(ctx context.Context) (*domain.AdminSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.AdminSettings) error
	ListBlockedDates(ctx context.Context, from, to time.Time) ([]domain.BlockedDate, error)
	AddBlockedDate(ctx context.Context, bd domain.BlockedDate) (*domain.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, date time.Time) error
}

// Logger is the logging interface required by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
