package create_time_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.PeakSlots) == 0 && len(req.AlternativeSlots) == 0 {
		return fmt.Errorf("%w: at least one slot range is required", ErrInvalidInput)
	}

	for _, r := range append(append([]SlotRange{}, req.PeakSlots...), req.AlternativeSlots...) {
		if err := r.Start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time %q: %v", ErrInvalidInput, r.Start, err)
		}
		if err := r.End.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end time %q: %v", ErrInvalidInput, r.End, err)
		}
	}

	return nil
}
