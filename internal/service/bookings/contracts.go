package bookings

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByTrainer(ctx context.Context, trainerID int64, page, pageSize int) ([]*domain.Booking, int64, error)
	SetAttendance(ctx context.Context, id int64, attended bool) error
	UpdateAccolades(ctx context.Context, id int64, accolades []int64) error
}

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
