package send_reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	scheduleRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/schedule"
)

const (
	window24hEarly = 23 * time.Hour
	window24hLate  = 25 * time.Hour
	window1hEarly  = 45 * time.Minute
	window1hLate   = 75 * time.Minute
)

// UseCase is the periodic reminder sweep. Each run scans confirmed
// appointments with unsent reminders and emails those whose start falls
// inside a reminder window. Flags flip only after a successful send, so a
// failed send is retried while the appointment is still in the window.
type UseCase struct {
	appointments AppointmentRepository
	schedule     ScheduleRepository
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	appointments AppointmentRepository,
	schedule ScheduleRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		schedule:     schedule,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs one sweep. Per-appointment failures are counted, logged
// and skipped; only the inability to list candidates fails the sweep.
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()
	loc := uc.businessLocation(ctx)

	pending, err := uc.appointments.ListPendingReminders(ctx)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list candidates: %v", err)
		uc.metrics.IncReminderSweepFailure()
		return nil, fmt.Errorf("%w: failed to list candidates: %v", ErrInternal, err)
	}

	result := &Result{Checked: len(pending)}

	for _, appt := range pending {
		until := appt.StartInstant(loc).Sub(now)

		if !appt.Reminder24hSent && within(until, window24hEarly, window24hLate) {
			if uc.sendAndMark(ctx, appt, Window24h) {
				result.Sent24h++
			} else {
				result.Failures++
			}
		}

		if !appt.Reminder1hSent && within(until, window1hEarly, window1hLate) {
			if uc.sendAndMark(ctx, appt, Window1h) {
				result.Sent1h++
			} else {
				result.Failures++
			}
		}
	}

	if result.Sent24h+result.Sent1h+result.Failures > 0 {
		uc.logger.Info("SendReminders: checked=%d sent24h=%d sent1h=%d failures=%d",
			result.Checked, result.Sent24h, result.Sent1h, result.Failures)
	}

	return result, nil
}

// sendAndMark sends one reminder and, only on success, flips the flag.
// Send-then-flag means a crash between the two can duplicate a reminder;
// that beats the flag-then-send alternative of silently losing one.
func (uc *UseCase) sendAndMark(ctx context.Context, appt *domain.Appointment, window string) bool {
	var err error
	switch window {
	case Window1h:
		err = uc.notifier.SendReminder1h(appt)
	default:
		err = uc.notifier.SendReminder24h(appt)
	}
	if err != nil {
		uc.logger.Warn("SendReminders: %s reminder failed for id=%d, will retry: %v", window, appt.ID, err)
		return false
	}

	if err := uc.appointments.MarkReminderSent(ctx, appt.ID, window); err != nil {
		uc.logger.Error("SendReminders: sent %s reminder for id=%d but failed to mark: %v", window, appt.ID, err)
		return false
	}

	uc.metrics.IncReminderSent(window)
	return true
}

func within(until, early, late time.Duration) bool {
	return until >= early && until <= late
}

func (uc *UseCase) businessLocation(ctx context.Context) *time.Location {
	settings, err := uc.schedule.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			uc.logger.Error("SendReminders: failed to get settings: %v", err)
		}
		settings = &domain.AdminSettings{Timezone: domain.DefaultTimezone}
	}
	loc, err := settings.Location()
	if err != nil {
		uc.logger.Error("SendReminders: invalid timezone %q, falling back to UTC: %v", settings.Timezone, err)
		return time.UTC
	}
	return loc
}
