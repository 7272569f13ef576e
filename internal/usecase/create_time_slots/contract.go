package create_time_slots

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*identityservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
