package create_appointment

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/internal/integrations/zoom"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// AppointmentRepository persists appointments. ListActiveByDate locks the
// date's rows (FOR UPDATE) when called inside a transaction.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository provides the booking policy singleton.
type ScheduleRepository interface {
	GetSettings(ctx context.Context) (*domain.AdminSettings, error)
}

// SlotResolver answers whether a slot is currently bookable, applying the
// full resolution (date gate, schedule, occupancy, external busy periods).
type SlotResolver interface {
	IsSlotAvailable(ctx context.Context, date time.Time, start types.TimeString, excludeAppointmentID *int64) (bool, error)
}

// MeetingProvisioner creates the video meeting for an appointment.
type MeetingProvisioner interface {
	CreateMeeting(ctx context.Context, req *zoom.MeetingRequest) (*zoom.Meeting, error)
}

// Notifier sends the guest-facing confirmation email.
type Notifier interface {
	SendBookingConfirmation(appt *domain.Appointment) error
}

// Metrics counts bookings that confirm without a meeting link.
type Metrics interface {
	IncMeetinglessBooking()
}

// TransactionManager runs a function inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
