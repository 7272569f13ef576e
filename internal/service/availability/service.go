package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	availabilityRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-TrainerService/internal/service/availability/models"
)

// Service сервис чтения доступности тренеров
// Запись доступности идёт через usecase set_availability.
type Service struct {
	availabilityRepo AvailabilityRepository
	timeSlotRepo     TimeSlotRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	timeSlotRepo TimeSlotRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		timeSlotRepo:     timeSlotRepo,
		logger:           logger,
	}
}

// GetByTrainerAndDate получает дневную доступность тренера на дату
// Возвращает представление с недельными показателями и слотами,
// разложенными по типам (peak/alternative).
func (s *Service) GetByTrainerAndDate(ctx context.Context, trainerID int64, date time.Time) (*models.DailyAvailabilityView, error) {
	s.logger.Info("GetByTrainerAndDate: fetching availability for trainer=%d, date=%s",
		trainerID, date.Format("2006-01-02"))

	day, err := s.availabilityRepo.FindDailyByTrainerAndDate(ctx, trainerID, date)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrDayNotFound) {
			s.logger.Warn("GetByTrainerAndDate: no availability for trainer=%d, date=%s",
				trainerID, date.Format("2006-01-02"))
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("GetByTrainerAndDate: repository error for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: GetByTrainerAndDate - repository error: %v", ErrInternal, err)
	}

	week, err := s.availabilityRepo.GetWeekByID(ctx, day.WeekID)
	if err != nil {
		s.logger.Error("GetByTrainerAndDate: failed to get week id=%d: %v", day.WeekID, err)
		return nil, fmt.Errorf("%w: GetByTrainerAndDate - failed to get week: %v", ErrInternal, err)
	}

	slots, err := s.timeSlotRepo.ListByDailyAvailability(ctx, day.ID)
	if err != nil {
		s.logger.Error("GetByTrainerAndDate: failed to list slots for day id=%d: %v", day.ID, err)
		return nil, fmt.Errorf("%w: GetByTrainerAndDate - failed to list slots: %v", ErrInternal, err)
	}

	s.logger.Info("GetByTrainerAndDate: successfully fetched availability for trainer=%d, date=%s, slots=%d",
		trainerID, date.Format("2006-01-02"), len(slots))
	return models.FromDomain(day, week, slots), nil
}
