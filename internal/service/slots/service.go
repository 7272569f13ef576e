package slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/service/slots/models"
)

// Service сервис списков временных слотов (реестр слотов)
type Service struct {
	timeSlotRepo TimeSlotRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(timeSlotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		timeSlotRepo: timeSlotRepo,
		logger:       logger,
	}
}

// ListTrainerSlots получает слоты тренера с пагинацией
// Сортировка всегда по времени начала (start_time ASC).
func (s *Service) ListTrainerSlots(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	if req.TrainerID <= 0 {
		s.logger.Warn("ListTrainerSlots: invalid trainer id=%d", req.TrainerID)
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	req.Normalize()

	s.logger.Info("ListTrainerSlots: fetching slots for trainer=%d, page=%d, pageSize=%d",
		req.TrainerID, req.Page, req.PageSize)

	filter := domain.TimeSlotFilter{
		TrainerID: req.TrainerID,
		Date:      req.Date,
		CreatedBy: req.CreatedBy,
	}

	slotList, total, err := s.timeSlotRepo.List(ctx, filter, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("ListTrainerSlots: repository error for trainer=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: ListTrainerSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTrainerSlots: successfully fetched %d slots for trainer=%d (total=%d)",
		len(slotList), req.TrainerID, total)
	return models.FromDomainSlotList(slotList, total, req.Page, req.PageSize), nil
}
