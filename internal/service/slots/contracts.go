package slots

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	List(ctx context.Context, filter domain.TimeSlotFilter, page, pageSize int) ([]*domain.TimeSlot, int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
