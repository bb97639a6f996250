package create_appointment

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/clearpath-advisory/booking-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if _, err := mail.ParseAddress(req.GuestEmail); err != nil {
		return fmt.Errorf("%w: invalid guestEmail: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
