package get_available_slots

import "fmt"

func (uc *UseCase) validateRequest(req Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
