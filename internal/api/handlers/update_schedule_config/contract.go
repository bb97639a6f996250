package update_schedule_config

import (
	"context"

	"github.com/clearpath-advisory/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
