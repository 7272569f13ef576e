package set_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// День отпуска не может нести диапазоны
	if !req.IsAvailable && (len(req.PeakSlots) > 0 || len(req.AlternativeSlots) > 0) {
		return fmt.Errorf("%w: leave day cannot carry slot ranges", ErrInvalidInput)
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
