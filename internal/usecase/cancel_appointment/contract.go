package cancel_appointment

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
)

// AppointmentRepository reads and cancels appointments.
type AppointmentRepository interface {
	GetByCancelToken(ctx context.Context, token string) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// ScheduleRepository provides the booking policy singleton (for the
// business timezone).
type ScheduleRepository interface {
	GetSettings(ctx context.Context) (*domain.AdminSettings, error)
}

// Notifier sends the guest-facing cancellation email.
type Notifier interface {
	SendCancellationConfirmation(appt *domain.Appointment) error
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
