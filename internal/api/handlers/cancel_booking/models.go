package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/SMC-TrainerService/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	TrainerID   int64  `json:"trainerId"`
	TimeSlotID  int64  `json:"timeSlotId"`
	IsCancelled bool   `json:"isCancelled"`
	CancelledAt string `json:"cancelledAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:          resp.ID,
		CustomerID:  resp.CustomerID,
		TrainerID:   resp.TrainerID,
		TimeSlotID:  resp.TimeSlotID,
		IsCancelled: resp.IsCancelled,
		CancelledAt: resp.CancelledAt.Format(time.RFC3339),
	}
}
