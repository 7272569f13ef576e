package book_slot

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	bookSlot "github.com/m04kA/SMC-TrainerService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	TrainerID  int64 `json:"trainerId"`
	TimeSlotID int64 `json:"timeSlotId"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	ID                 int64  `json:"id"`
	CustomerID         int64  `json:"customerId"`
	TrainerID          int64  `json:"trainerId"`
	TimeSlotID         int64  `json:"timeSlotId"`
	OriginalTimeSlotID int64  `json:"originalTimeSlotId"`
	SlotDate           string `json:"slotDate"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	CreatedAt          string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		ID:                 resp.ID,
		CustomerID:         resp.CustomerID,
		TrainerID:          resp.TrainerID,
		TimeSlotID:         resp.TimeSlotID,
		OriginalTimeSlotID: resp.OriginalTimeSlotID,
		SlotDate:           resp.SlotDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		EndTime:            resp.EndTime.String(),
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
