package set_availability

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден в IdentityService
	ErrTrainerNotFound = errors.New("set_availability: trainer not found")

	// ErrNotTrainer возвращается, когда пользователь не является тренером
	ErrNotTrainer = errors.New("set_availability: user is not a trainer")

	// ErrInvalidSlotRange возвращается при диапазоне с нулевой или отрицательной длительностью
	ErrInvalidSlotRange = errors.New("set_availability: invalid slot range")

	// ErrLeaveLimitExceeded возвращается при превышении лимита отпускных дней в месяце
	ErrLeaveLimitExceeded = errors.New("set_availability: monthly leave limit exceeded")

	// ErrDayHasBookedSlots возвращается, когда на день есть забронированные слоты
	// Перегенерация слотов дня разрушительна и запрещена при живых бронированиях.
	ErrDayHasBookedSlots = errors.New("set_availability: day has booked slots")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_availability: internal error")
)
