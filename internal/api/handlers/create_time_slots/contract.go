package create_time_slots

import (
	"context"

	createTimeSlots "github.com/m04kA/SMC-TrainerService/internal/usecase/create_time_slots"
)

type CreateTimeSlotsUseCase interface {
	Execute(ctx context.Context, req *createTimeSlots.Request) (*createTimeSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
