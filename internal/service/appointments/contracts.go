package appointments

import (
	"context"

	"github.com/clearpath-advisory/booking-service/internal/domain"
)

// AppointmentRepository reads appointments for the operator views.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger is the logging interface required by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
