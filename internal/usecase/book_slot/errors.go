package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: time slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("book_slot: time slot is already booked")

	// ErrTrainerMismatch возвращается, когда слот принадлежит другому тренеру
	ErrTrainerMismatch = errors.New("book_slot: time slot belongs to another trainer")

	// ErrCustomerNotFound возвращается, когда клиент не найден в IdentityService
	ErrCustomerNotFound = errors.New("book_slot: customer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
