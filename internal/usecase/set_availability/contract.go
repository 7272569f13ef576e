package set_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	FindOrCreateWeek(ctx context.Context, trainerID int64, weekStart, weekEnd time.Time, requiredMinutes int) (*domain.WeeklyAvailability, error)
	FindDailyByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) (*domain.DailyAvailability, error)
	UpsertDaily(ctx context.Context, day *domain.DailyAvailability) (*domain.DailyAvailability, error)
	CountLeaveDays(ctx context.Context, trainerID int64, from, to time.Time) (int, error)
	RecomputeWeekBookedMinutes(ctx context.Context, weekID int64) (int, error)
}

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error)
	CountBookedByDailyAvailability(ctx context.Context, dailyID int64) (int, error)
	DeleteByDailyAvailability(ctx context.Context, dailyID int64) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*identityservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
