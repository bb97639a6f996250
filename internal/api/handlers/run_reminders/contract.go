package run_reminders

import (
	"context"

	sendReminders "github.com/clearpath-advisory/booking-service/internal/usecase/send_reminders"
)

type SendRemindersUseCase interface {
	Execute(ctx context.Context) (*sendReminders.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
