package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	scheduleRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/schedule"
	"github.com/clearpath-advisory/booking-service/internal/integrations/zoom"
)

// UseCase books an appointment: re-validates the slot, provisions the
// video meeting, persists inside a serializable transaction and sends the
// confirmation email. The email is fire-and-forget; a committed booking
// stands even if it fails.
type UseCase struct {
	appointments AppointmentRepository
	schedule     ScheduleRepository
	resolver     SlotResolver
	meetings     MeetingProvisioner
	notifier     Notifier
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	appointments AppointmentRepository,
	schedule ScheduleRepository,
	resolver SlotResolver,
	meetings MeetingProvisioner,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		schedule:     schedule,
		resolver:     resolver,
		meetings:     meetings,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute books the requested slot.
//
// Ordering matters: the meeting is provisioned before the insert so that a
// confirmed appointment always carries its join link, and the insert
// re-checks occupancy under a row lock so two guests cannot take the same
// slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, guest=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.GuestEmail)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	settings, loc, err := uc.loadPolicy(ctx)
	if err != nil {
		return nil, err
	}

	// First availability pass, before any external call. Catches the common
	// failures cheaply; the authoritative check happens under the row lock.
	available, err := uc.resolver.IsSlotAvailable(ctx, req.Date, req.StartTime, req.ExcludeAppointmentID)
	if err != nil {
		uc.logger.Error("CreateAppointment: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("CreateAppointment: slot %s %s not available",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrSlotNotAvailable
	}

	// Provision before persisting: a confirmed appointment must never be
	// stored without its join link.
	meeting, err := uc.provisionMeeting(ctx, req, settings, loc)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		GuestName:       strings.TrimSpace(req.GuestName),
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: settings.AppointmentDurationMinutes,
		Status:          domain.StatusConfirmed,
		Notes:           req.Notes,
		CancelToken:     uuid.NewString(),
		SourceRef:       req.SourceRef,
		RescheduledFrom: req.RescheduledFrom,
	}
	if meeting != nil {
		appt.MeetingID = &meeting.ID
		appt.MeetingJoinURL = &meeting.JoinURL
	}

	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Re-check occupancy under FOR UPDATE: the pre-check ran without a
		// lock and may have raced another booking.
		booked, err := uc.appointments.ListActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}
		for _, existing := range booked {
			if req.ExcludeAppointmentID != nil && existing.ID == *req.ExcludeAppointmentID {
				continue
			}
			if existing.StartTime == req.StartTime {
				uc.logger.Warn("CreateAppointment: slot taken by appointment id=%d", existing.ID)
				return ErrSlotNotAvailable
			}
		}

		created, err = uc.appointments.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", created.ID)

	if !req.SkipConfirmation {
		if err := uc.notifier.SendBookingConfirmation(created); err != nil {
			// Logged by the notifier; the booking already committed.
			uc.logger.Warn("CreateAppointment: confirmation email failed for id=%d", created.ID)
		}
	}

	return &Response{
		ID:              created.ID,
		Date:            created.Date,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		GuestName:       created.GuestName,
		GuestEmail:      created.GuestEmail,
		MeetingJoinURL:  created.MeetingJoinURL,
		CancelToken:     created.CancelToken,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// provisionMeeting creates the video meeting. Failures are hard errors:
// the confirmation email's value is the join link, so booking aborts
// rather than persisting a link-less appointment. Only an entirely
// unconfigured provider (no credentials at all, e.g. a local setup)
// degrades to a meeting-less appointment.
func (uc *UseCase) provisionMeeting(ctx context.Context, req *Request, settings *domain.AdminSettings, loc *time.Location) (*zoom.Meeting, error) {
	startInstant := instantOf(req.Date, req.StartTime.Minutes(), loc)

	meeting, err := uc.meetings.CreateMeeting(ctx, &zoom.MeetingRequest{
		Topic:           fmt.Sprintf("Consultation with %s", strings.TrimSpace(req.GuestName)),
		StartTime:       startInstant,
		DurationMinutes: settings.AppointmentDurationMinutes,
		Timezone:        settings.Timezone,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
	})
	if err != nil {
		if errors.Is(err, zoom.ErrNotConfigured) {
			uc.logger.Warn("CreateAppointment: meeting provider not configured, booking without meeting")
			uc.metrics.IncMeetinglessBooking()
			return nil, nil
		}
		uc.logger.Error("CreateAppointment: meeting provisioning failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMeetingProvisioning, err)
	}
	return meeting, nil
}

func (uc *UseCase) loadPolicy(ctx context.Context) (*domain.AdminSettings, *time.Location, error) {
	settings, err := uc.schedule.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
			return nil, nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = &domain.AdminSettings{
			AppointmentDurationMinutes: domain.DefaultAppointmentDurationMinutes,
			BufferMinutes:              domain.DefaultBufferMinutes,
			AdvanceBookingDays:         domain.DefaultAdvanceBookingDays,
			Timezone:                   domain.DefaultTimezone,
		}
	}

	loc, err := settings.Location()
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid timezone %q, falling back to UTC: %v", settings.Timezone, err)
		loc = time.UTC
	}
	return settings, loc, nil
}

func instantOf(date time.Time, minutes int, loc *time.Location) time.Time {
	if minutes < 0 {
		minutes = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(minutes) * time.Minute)
}
