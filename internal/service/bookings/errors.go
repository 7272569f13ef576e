package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingCancelled возвращается при операции над отменённым бронированием
	ErrBookingCancelled = errors.New("booking is cancelled")

	// ErrTrainerMismatch возвращается, когда бронирование принадлежит другому тренеру
	ErrTrainerMismatch = errors.New("booking belongs to another trainer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
