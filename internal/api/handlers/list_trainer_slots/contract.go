package list_trainer_slots

import (
	"context"

	"github.com/m04kA/SMC-TrainerService/internal/service/slots/models"
)

type SlotService interface {
	ListTrainerSlots(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
