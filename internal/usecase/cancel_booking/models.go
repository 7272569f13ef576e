package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64 // ID бронирования
}

// Response модель ответа с отменённым бронированием
type Response struct {
	ID          int64
	CustomerID  int64
	TrainerID   int64
	TimeSlotID  int64
	IsCancelled bool
	CancelledAt time.Time
}
