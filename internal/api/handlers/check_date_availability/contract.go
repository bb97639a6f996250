package check_date_availability

import (
	"context"

	getAvailableSlots "github.com/clearpath-advisory/booking-service/internal/usecase/get_available_slots"
)

type CheckDateUseCase interface {
	CheckDate(ctx context.Context, req getAvailableSlots.Request) (*getAvailableSlots.DateCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
