package create_time_slots

import "errors"

var (
	// ErrCreatorNotFound возвращается, когда создатель не найден в IdentityService
	ErrCreatorNotFound = errors.New("create_time_slots: creator not found")

	// ErrNotAllowed возвращается, когда создатель не админ и не тренер
	ErrNotAllowed = errors.New("create_time_slots: creator is not allowed to create slots")

	// ErrInvalidSlotRange возвращается при диапазоне с нулевой или отрицательной длительностью
	ErrInvalidSlotRange = errors.New("create_time_slots: invalid slot range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_time_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_time_slots: internal error")
)
