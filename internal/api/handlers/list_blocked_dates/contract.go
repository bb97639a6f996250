package list_blocked_dates

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedDates(ctx context.Context, from, to time.Time) ([]*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
