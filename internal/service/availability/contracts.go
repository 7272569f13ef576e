package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	FindDailyByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) (*domain.DailyAvailability, error)
	GetWeekByID(ctx context.Context, id int64) (*domain.WeeklyAvailability, error)
}

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	ListByDailyAvailability(ctx context.Context, dailyID int64) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
