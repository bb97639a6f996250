package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	scheduleRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/schedule"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// UseCase resolves bookable slots for a date by intersecting the weekly
// schedule, the booking policy, already-booked appointments and external
// calendar busy periods.
type UseCase struct {
	appointments AppointmentRepository
	schedule     ScheduleRepository
	calendar     CalendarGateway
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	appointments AppointmentRepository,
	schedule ScheduleRepository,
	calendar CalendarGateway,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		schedule:     schedule,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the available slot start times for the requested date.
// A date outside the bookable window, blocked, or falling on an
// unavailable weekday yields an empty slot list, not an error.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	return uc.resolve(ctx, req, nil)
}

// resolve runs the full slot resolution. excludeAppointmentID, when set,
// removes one appointment from the occupancy check so that a reschedule
// can re-claim (or stay adjacent to) its own current slot.
func (uc *UseCase) resolve(ctx context.Context, req Request, excludeAppointmentID *int64) (*Response, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	settings, loc, err := uc.loadPolicy(ctx)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Date:            dateOnly(req.Date, loc),
		Slots:           []types.TimeString{},
		DurationMinutes: settings.AppointmentDurationMinutes,
	}

	if !isDateBookable(req.Date, uc.timeProvider.Now(), settings.AdvanceBookingDays, loc) {
		return resp, nil
	}

	blocked, err := uc.schedule.IsDateBlocked(ctx, resp.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to check blocked date: %v", ErrInternal, err)
	}
	if blocked {
		return resp, nil
	}

	weekly, err := uc.schedule.GetWeeklySchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to get weekly schedule: %v", ErrInternal, err)
	}

	hours := weekly.ForWeekday(resp.Date.Weekday())
	if !hours.IsAvailable {
		return resp, nil
	}

	slots := enumerateSlots(hours.StartTime, hours.EndTime, settings.SlotStride(), settings.AppointmentDurationMinutes)
	if len(slots) == 0 {
		return resp, nil
	}

	booked, err := uc.appointments.ListActiveByDate(ctx, resp.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to list appointments: %v", ErrInternal, err)
	}
	slots = excludeBooked(slots, booked, excludeAppointmentID)

	feed := uc.calendar.FetchBusyPeriods(ctx, resp.Date, loc)
	resp.CalendarConfigured = feed.Configured
	slots = excludeBusy(slots, settings.AppointmentDurationMinutes, feed.BusyPeriods)

	resp.Slots = slots
	return resp, nil
}

// CheckDate reports whether guests may book on a date at all: inside the
// bookable window, not blocked and on an available weekday. Occupancy is
// deliberately ignored; the check feeds calendar-day graying, where a fully
// booked day stays selectable and simply offers no slots.
func (uc *UseCase) CheckDate(ctx context.Context, req Request) (*DateCheckResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	settings, loc, err := uc.loadPolicy(ctx)
	if err != nil {
		return nil, err
	}

	resp := &DateCheckResponse{Date: dateOnly(req.Date, loc)}

	if !isDateBookable(req.Date, uc.timeProvider.Now(), settings.AdvanceBookingDays, loc) {
		return resp, nil
	}

	blocked, err := uc.schedule.IsDateBlocked(ctx, resp.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: CheckDate - failed to check blocked date: %v", ErrInternal, err)
	}
	if blocked {
		return resp, nil
	}

	weekly, err := uc.schedule.GetWeeklySchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: CheckDate - failed to get weekly schedule: %v", ErrInternal, err)
	}

	resp.Available = weekly.ForWeekday(resp.Date.Weekday()).IsAvailable
	return resp, nil
}

// IsSlotAvailable reports whether a specific start time is among the
// currently bookable slots for the date. excludeAppointmentID lets a
// reschedule ignore the appointment it is about to move.
func (uc *UseCase) IsSlotAvailable(ctx context.Context, date time.Time, start types.TimeString, excludeAppointmentID *int64) (bool, error) {
	resp, err := uc.resolve(ctx, Request{Date: date}, excludeAppointmentID)
	if err != nil {
		return false, err
	}
	for _, slot := range resp.Slots {
		if slot == start {
			return true, nil
		}
	}
	return false, nil
}

// loadPolicy fetches admin settings, falling back to defaults when the
// singleton has not been seeded yet, and resolves the business timezone.
func (uc *UseCase) loadPolicy(ctx context.Context) (*domain.AdminSettings, *time.Location, error) {
	settings, err := uc.schedule.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			return nil, nil, fmt.Errorf("%w: loadPolicy - failed to get settings: %v", ErrInternal, err)
		}
		uc.logger.Warn("get_available_slots: admin settings missing, using defaults")
		settings = &domain.AdminSettings{
			AppointmentDurationMinutes: domain.DefaultAppointmentDurationMinutes,
			BufferMinutes:              domain.DefaultBufferMinutes,
			AdvanceBookingDays:         domain.DefaultAdvanceBookingDays,
			Timezone:                   domain.DefaultTimezone,
		}
	}

	loc, err := settings.Location()
	if err != nil {
		uc.logger.Error("get_available_slots: invalid timezone %q, falling back to UTC: %v", settings.Timezone, err)
		loc = time.UTC
	}

	return settings, loc, nil
}
