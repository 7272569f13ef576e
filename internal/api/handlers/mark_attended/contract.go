package mark_attended

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/service/bookings/models"
)

type BookingService interface {
	MarkAttended(ctx context.Context, bookingID, trainerID int64, attended bool) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
