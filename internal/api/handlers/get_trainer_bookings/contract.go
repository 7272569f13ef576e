package get_trainer_bookings

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/service/bookings/models"
)

type BookingService interface {
	ListByTrainer(ctx context.Context, trainerID int64, page, pageSize int) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
