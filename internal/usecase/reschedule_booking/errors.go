package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBookingCancelled возвращается при переносе отменённого бронирования
	ErrBookingCancelled = errors.New("reschedule_booking: booking is cancelled")

	// ErrSlotNotFound возвращается, когда целевой слот не найден
	ErrSlotNotFound = errors.New("reschedule_booking: target time slot not found")

	// ErrSlotAlreadyBooked возвращается, когда целевой слот занят
	ErrSlotAlreadyBooked = errors.New("reschedule_booking: target time slot is already booked")

	// ErrTrainerMismatch возвращается, когда целевой слот принадлежит другому тренеру
	ErrTrainerMismatch = errors.New("reschedule_booking: target slot belongs to another trainer")

	// ErrSameSlot возвращается при переносе на тот же самый слот
	ErrSameSlot = errors.New("reschedule_booking: booking already holds this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
