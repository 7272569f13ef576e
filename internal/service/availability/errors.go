package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда на указанную дату
	// нет записи доступности
	ErrAvailabilityNotFound = errors.New("no availability found for this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
