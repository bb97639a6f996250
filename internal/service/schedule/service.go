package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	scheduleRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/schedule"
	"github.com/clearpath-advisory/booking-service/internal/service/schedule/models"
)

// Service manages the operator-facing schedule configuration: the weekly
// working hours, the booking policy singleton and blocked dates.
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetConfig returns the current policy and the full week. Missing
// settings fall back to defaults so a fresh install renders sensibly.
func (s *Service) GetConfig(ctx context.Context) (*models.ConfigResponse, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			s.logger.Error("GetConfig: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = &domain.AdminSettings{
			AppointmentDurationMinutes: domain.DefaultAppointmentDurationMinutes,
			BufferMinutes:              domain.DefaultBufferMinutes,
			AdvanceBookingDays:         domain.DefaultAdvanceBookingDays,
			Timezone:                   domain.DefaultTimezone,
		}
	}

	weekly, err := s.repo.GetWeeklySchedule(ctx)
	if err != nil {
		s.logger.Error("GetConfig: failed to get weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	return models.FromDomain(settings, weekly), nil
}

// UpdateConfig validates and stores the policy, then upserts each listed
// day. Days not listed keep their stored configuration.
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: duration=%d buffer=%d advance=%d tz=%s days=%d",
		req.AppointmentDurationMinutes, req.BufferMinutes, req.AdvanceBookingDays, req.Timezone, len(req.Days))

	if err := validatePolicy(req); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}
	for _, day := range req.Days {
		if err := validateDay(day); err != nil {
			s.logger.Warn("UpdateConfig: validation failed for %s: %v", day.Weekday, err)
			return nil, err
		}
	}

	settings := &domain.AdminSettings{
		AppointmentDurationMinutes: req.AppointmentDurationMinutes,
		BufferMinutes:              req.BufferMinutes,
		AdvanceBookingDays:         req.AdvanceBookingDays,
		Timezone:                   req.Timezone,
	}
	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		s.logger.Error("UpdateConfig: failed to update settings: %v", err)
		return nil, fmt.Errorf("%w: failed to update settings: %v", ErrInternal, err)
	}

	for _, day := range req.Days {
		wh := domain.WorkingHours{
			Weekday:     day.Weekday,
			StartTime:   day.StartTime,
			EndTime:     day.EndTime,
			IsAvailable: day.IsAvailable,
		}
		if err := s.repo.UpsertWorkingHours(ctx, wh); err != nil {
			s.logger.Error("UpdateConfig: failed to upsert %s: %v", day.Weekday, err)
			return nil, fmt.Errorf("%w: failed to upsert working hours: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateConfig: configuration updated")
	return s.GetConfig(ctx)
}

// ListBlockedDates returns blocked dates in [from, to].
func (s *Service) ListBlockedDates(ctx context.Context, from, to time.Time) ([]*models.BlockedDateResponse, error) {
	dates, err := s.repo.ListBlockedDates(ctx, from, to)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked dates: %v", ErrInternal, err)
	}

	out := make([]*models.BlockedDateResponse, 0, len(dates))
	for i := range dates {
		out = append(out, models.FromDomainBlockedDate(&dates[i]))
	}
	return out, nil
}

// AddBlockedDate blocks one calendar date. Blocking an already-blocked
// date updates its reason.
func (s *Service) AddBlockedDate(ctx context.Context, date time.Time, reason *string) (*models.BlockedDateResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	created, err := s.repo.AddBlockedDate(ctx, domain.BlockedDate{Date: date, Reason: reason})
	if err != nil {
		s.logger.Error("AddBlockedDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to add blocked date: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlockedDate: blocked %s", date.Format(domain.DateFormat))
	return models.FromDomainBlockedDate(created), nil
}

// RemoveBlockedDate unblocks one calendar date.
func (s *Service) RemoveBlockedDate(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.repo.RemoveBlockedDate(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("RemoveBlockedDate: %s is not blocked", date.Format(domain.DateFormat))
			return ErrBlockedDateNotFound
		}
		s.logger.Error("RemoveBlockedDate: repository error: %v", err)
		return fmt.Errorf("%w: failed to remove blocked date: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBlockedDate: unblocked %s", date.Format(domain.DateFormat))
	return nil
}

func validatePolicy(req *models.UpdateConfigRequest) error {
	if req.AppointmentDurationMinutes < domain.MinAppointmentDurationMinutes ||
		req.AppointmentDurationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: appointmentDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinAppointmentDurationMinutes, domain.MaxAppointmentDurationMinutes)
	}
	if req.BufferMinutes < domain.MinBufferMinutes || req.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays || req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.Timezone)
	}
	return nil
}

func validateDay(day models.DayConfig) error {
	if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
		return fmt.Errorf("%w: invalid weekday %d", ErrInvalidInput, day.Weekday)
	}
	if !day.IsAvailable {
		return nil
	}
	if err := day.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := day.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !day.StartTime.IsBefore(day.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}
