package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	apptRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/appointment"
	"github.com/clearpath-advisory/booking-service/internal/service/appointments/models"
)

// Service serves the operator's read-only appointment views.
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns appointments matching the filter, ordered by date and
// start time.
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.AppointmentResponse, error) {
	filter := domain.AppointmentsFilter{
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		switch status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
			filter.Status = &status
			// Filtering by cancelled explicitly implies including them.
			if status == domain.StatusCancelled {
				filter.IncludeInactive = true
			}
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	appts, err := s.repo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	return models.FromDomainList(appts), nil
}

// GetByID returns one appointment for the operator detail view.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	return models.FromDomain(appt), nil
}
