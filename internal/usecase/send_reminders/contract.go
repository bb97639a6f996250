package send_reminders

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
)

// AppointmentRepository lists reminder candidates and flips sent flags.
type AppointmentRepository interface {
	ListPendingReminders(ctx context.Context) ([]*domain.Appointment, error)
	MarkReminderSent(ctx context.Context, id int64, window string) error
}

// ScheduleRepository provides the booking policy singleton (for the
// business timezone).
type ScheduleRepository interface {
	GetSettings(ctx context.Context) (*domain.AdminSettings, error)
}

// Notifier sends the reminder emails.
type Notifier interface {
	SendReminder24h(appt *domain.Appointment) error
	SendReminder1h(appt *domain.Appointment) error
}

// Metrics counts sent reminders and sweep failures.
type Metrics interface {
	IncReminderSent(window string)
	IncReminderSweepFailure()
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
