package add_blocked_date

import (
	"context"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	AddBlockedDate(ctx context.Context, date time.Time, reason *string) (*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
