package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	apptRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/schedule"
)

// UseCase cancels an appointment identified by its secret token.
type UseCase struct {
	appointments AppointmentRepository
	schedule     ScheduleRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	appointments AppointmentRepository,
	schedule ScheduleRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		schedule:     schedule,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute cancels the appointment. Cancellation is terminal and
// idempotence is refused explicitly: a second cancel reports
// ErrAlreadyCancelled rather than succeeding silently, so the guest
// learns the link was already used.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CancelToken == "" {
		return nil, fmt.Errorf("%w: cancelToken is required", ErrInvalidInput)
	}

	appt, err := uc.appointments.GetByCancelToken(ctx, req.CancelToken)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelAppointment: no appointment for token")
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to get appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if appt.IsCancelled() {
		uc.logger.Warn("CancelAppointment: appointment id=%d already cancelled", appt.ID)
		return nil, ErrAlreadyCancelled
	}

	loc := uc.businessLocation(ctx)
	if !appt.StartInstant(loc).After(uc.timeProvider.Now()) {
		uc.logger.Warn("CancelAppointment: appointment id=%d already past", appt.ID)
		return nil, ErrAlreadyPast
	}

	if err := uc.appointments.Cancel(ctx, appt.ID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to cancel id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAppointment: cancelled appointment id=%d", appt.ID)

	if err := uc.notifier.SendCancellationConfirmation(appt); err != nil {
		// Logged by the notifier; the cancellation already committed.
		uc.logger.Warn("CancelAppointment: cancellation email failed for id=%d", appt.ID)
	}

	return &Response{
		ID:        appt.ID,
		Date:      appt.Date,
		StartTime: appt.StartTime,
		Status:    string(domain.StatusCancelled),
	}, nil
}

// businessLocation resolves the configured timezone, falling back to the
// default zone when settings are missing or invalid.
func (uc *UseCase) businessLocation(ctx context.Context) *time.Location {
	settings, err := uc.schedule.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			uc.logger.Error("CancelAppointment: failed to get settings: %v", err)
		}
		settings = &domain.AdminSettings{Timezone: domain.DefaultTimezone}
	}
	loc, err := settings.Location()
	if err != nil {
		uc.logger.Error("CancelAppointment: invalid timezone %q, falling back to UTC: %v", settings.Timezone, err)
		return time.UTC
	}
	return loc
}
