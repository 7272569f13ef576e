package analytics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountAttendedInRange(ctx context.Context, trainerID int64, from, to time.Time) (int, error)
	ListSlotInfoByTrainer(ctx context.Context, trainerID int64) ([]*domain.BookingSlotInfo, error)
}

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	CountBookedInRange(ctx context.Context, trainerID int64, from, to time.Time) (int, error)
}

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	FindWeekByTrainerAndStart(ctx context.Context, trainerID int64, weekStart time.Time) (*domain.WeeklyAvailability, error)
}

// TimeProvider абстракция над текущим временем для тестируемости
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на основе системных часов
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
