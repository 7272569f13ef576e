package book_slot

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	CustomerID int64 // ID клиента
	TrainerID  int64 // ID тренера (владелец слота)
	TimeSlotID int64 // ID бронируемого слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                 int64
	CustomerID         int64
	TrainerID          int64
	TimeSlotID         int64
	OriginalTimeSlotID int64
	SlotDate           time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
	CreatedAt          time.Time
}
