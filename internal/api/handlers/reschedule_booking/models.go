package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	rescheduleBooking "github.com/m04kA/SMC-TrainerService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewTimeSlotID int64 `json:"newTimeSlotId"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID                 int64  `json:"id"`
	CustomerID         int64  `json:"customerId"`
	TrainerID          int64  `json:"trainerId"`
	TimeSlotID         int64  `json:"timeSlotId"`
	OriginalTimeSlotID int64  `json:"originalTimeSlotId"`
	RescheduledCount   int    `json:"rescheduledCount"`
	LastRescheduledAt  string `json:"lastRescheduledAt"`
	SlotDate           string `json:"slotDate"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:                 resp.ID,
		CustomerID:         resp.CustomerID,
		TrainerID:          resp.TrainerID,
		TimeSlotID:         resp.TimeSlotID,
		OriginalTimeSlotID: resp.OriginalTimeSlotID,
		RescheduledCount:   resp.RescheduledCount,
		LastRescheduledAt:  resp.LastRescheduledAt.Format(time.RFC3339),
		SlotDate:           resp.SlotDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		EndTime:            resp.EndTime.String(),
	}
}
