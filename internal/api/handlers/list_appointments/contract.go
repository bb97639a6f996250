package list_appointments

import (
	"context"

	"github.com/clearpath-advisory/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, req *models.ListRequest) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
