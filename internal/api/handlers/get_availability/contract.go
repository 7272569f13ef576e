package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) (*models.DailyAvailabilityView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
