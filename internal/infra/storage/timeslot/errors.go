package timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("timeslot.repository: time slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже забронирован
	// Условный UPDATE не нашёл свободную строку.
	ErrSlotAlreadyBooked = errors.New("timeslot.repository: time slot is already booked")

	// ErrSlotNotBooked возвращается при попытке освободить свободный слот
	ErrSlotNotBooked = errors.New("timeslot.repository: time slot is not booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
