package reschedule_appointment

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/internal/usecase/create_appointment"
)

// AppointmentRepository reads and cancels appointments.
type AppointmentRepository interface {
	GetByCancelToken(ctx context.Context, token string) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// ScheduleRepository provides the booking policy singleton (for the
// business timezone).
type ScheduleRepository interface {
	GetSettings(ctx context.Context) (*domain.AdminSettings, error)
}

// Booker books the replacement appointment; the reschedule flow reuses the
// whole booking pipeline (validation, meeting provisioning, row-locked
// persistence).
type Booker interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

// Notifier sends the combined reschedule email.
type Notifier interface {
	SendRescheduleConfirmation(newAppt, oldAppt *domain.Appointment) error
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
