package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID     int64 // ID бронирования
	NewTimeSlotID int64 // ID целевого слота
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID                 int64
	CustomerID         int64
	TrainerID          int64
	TimeSlotID         int64 // Новый удерживаемый слот
	OriginalTimeSlotID int64 // Исходный слот, не меняется
	RescheduledCount   int
	LastRescheduledAt  time.Time
	SlotDate           time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
}
