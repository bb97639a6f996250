package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	apptRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/schedule"
	"github.com/clearpath-advisory/booking-service/internal/usecase/create_appointment"
)

// UseCase moves an appointment to a new slot. The move is modeled as
// book-new-then-cancel-old rather than an in-place update: the original
// row stays in the history as cancelled, linked from the replacement.
type UseCase struct {
	appointments AppointmentRepository
	schedule     ScheduleRepository
	booker       Booker
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	appointments AppointmentRepository,
	schedule ScheduleRepository,
	booker Booker,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		schedule:     schedule,
		booker:       booker,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute reschedules the appointment identified by the token.
//
// The occupancy check excludes the original appointment, so moving to the
// same or an adjacent slot works. Booking errors from the replacement
// (slot taken, provisioning failure) propagate unchanged; the original
// appointment is only cancelled after the replacement committed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	old, err := uc.appointments.GetByCancelToken(ctx, req.CancelToken)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: no appointment for token")
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if old.IsCancelled() {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d already cancelled", old.ID)
		return nil, ErrAlreadyCancelled
	}
	if !old.StartInstant(uc.businessLocation(ctx)).After(uc.timeProvider.Now()) {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d already past", old.ID)
		return nil, ErrAlreadyPast
	}

	uc.logger.Info("RescheduleAppointment: moving id=%d to %s %s",
		old.ID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	created, err := uc.booker.Execute(ctx, &create_appointment.Request{
		Date:                 req.NewDate,
		StartTime:            req.NewStartTime,
		GuestName:            old.GuestName,
		GuestEmail:           old.GuestEmail,
		GuestPhone:           old.GuestPhone,
		Notes:                old.Notes,
		SourceRef:            old.SourceRef,
		ExcludeAppointmentID: &old.ID,
		RescheduledFrom:      &old.ID,
		SkipConfirmation:     true,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.appointments.Cancel(ctx, old.ID); err != nil {
		// The replacement committed; the guest's reschedule stands. The
		// stale original needs operator attention, so log loudly.
		uc.logger.Error("RescheduleAppointment: replacement id=%d created but failed to cancel original id=%d: %v",
			created.ID, old.ID, err)
	}

	newAppt, err := uc.appointments.GetByID(ctx, created.ID)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to reload appointment id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
	}

	if err := uc.notifier.SendRescheduleConfirmation(newAppt, old); err != nil {
		// Logged by the notifier; the reschedule already committed.
		uc.logger.Warn("RescheduleAppointment: reschedule email failed for id=%d", newAppt.ID)
	}

	uc.logger.Info("RescheduleAppointment: id=%d replaced by id=%d", old.ID, newAppt.ID)

	return &Response{
		ID:              newAppt.ID,
		Date:            newAppt.Date,
		StartTime:       newAppt.StartTime,
		DurationMinutes: newAppt.DurationMinutes,
		Status:          string(newAppt.Status),
		MeetingJoinURL:  newAppt.MeetingJoinURL,
		CancelToken:     newAppt.CancelToken,
		RescheduledFrom: old.ID,
	}, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.CancelToken == "" {
		return fmt.Errorf("%w: cancelToken is required", ErrInvalidInput)
	}
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}
	return nil
}

func (uc *UseCase) businessLocation(ctx context.Context) *time.Location {
	settings, err := uc.schedule.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			uc.logger.Error("RescheduleAppointment: failed to get settings: %v", err)
		}
		settings = &domain.AdminSettings{Timezone: domain.DefaultTimezone}
	}
	loc, err := settings.Location()
	if err != nil {
		uc.logger.Error("RescheduleAppointment: invalid timezone %q, falling back to UTC: %v", settings.Timezone, err)
		return time.UTC
	}
	return loc
}
