package update_accolades

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/service/bookings/models"
)

type BookingService interface {
	UpdateAccolades(ctx context.Context, bookingID, trainerID int64, accolades []int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
