package set_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/availability"
	identityClient "github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-TrainerService/pkg/datetime"
)

// UseCase use case установки дневной доступности тренера
//
// Установка дня всегда разрушительна для его слотов: старые слоты
// удаляются и генерируются заново из присланных диапазонов. Операция
// отклоняется целиком, если на день уже есть забронированные слоты.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	timeSlotRepo     TimeSlotRepository
	identityClient   IdentityClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	requiredMinutes  int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	timeSlotRepo TimeSlotRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	requiredMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		timeSlotRepo:     timeSlotRepo,
		identityClient:   identityClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		requiredMinutes:  requiredMinutes,
		logger:           logger,
	}
}

// Execute выполняет use case установки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetAvailability: trainer=%d, date=%s, available=%t, peak=%d, alternative=%d",
		req.TrainerID, req.Date.Format(domain.DateFormat), req.IsAvailable,
		len(req.PeakSlots), len(req.AlternativeSlots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем роль тренера (graceful degradation при недоступности сервиса)
	if err := uc.checkTrainerRole(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	date := datetime.DayStart(req.Date)

	var resp *Response

	// 3. Все операции с БД в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Находим или создаем недельную запись
		weekStart, weekEnd := datetime.WeekBounds(date)
		week, err := uc.availabilityRepo.FindOrCreateWeek(txCtx, req.TrainerID, weekStart, weekEnd, uc.requiredMinutes)
		if err != nil {
			uc.logger.Error("SetAvailability: failed to find or create week: %v", err)
			return fmt.Errorf("%w: failed to find or create week: %v", ErrInternal, err)
		}

		// 3.2. Существующая дневная запись (с блокировкой строки)
		existingDay, err := uc.availabilityRepo.FindDailyByTrainerAndDate(txCtx, req.TrainerID, date)
		if err != nil && !errors.Is(err, availabilityRepo.ErrDayNotFound) {
			uc.logger.Error("SetAvailability: failed to find daily record: %v", err)
			return fmt.Errorf("%w: failed to find daily record: %v", ErrInternal, err)
		}

		// 3.3. Забронированные слоты блокируют перегенерацию дня
		if existingDay != nil {
			bookedCount, err := uc.timeSlotRepo.CountBookedByDailyAvailability(txCtx, existingDay.ID)
			if err != nil {
				uc.logger.Error("SetAvailability: failed to count booked slots: %v", err)
				return fmt.Errorf("%w: failed to count booked slots: %v", ErrInternal, err)
			}
			if bookedCount > 0 {
				uc.logger.Warn("SetAvailability: day %s has %d booked slots, rejecting",
					date.Format(domain.DateFormat), bookedCount)
				return ErrDayHasBookedSlots
			}
		}

		// 3.4. Лимит отпускных дней проверяется до любой записи
		if !req.IsAvailable {
			if err := uc.checkLeaveLimit(txCtx, req.TrainerID, date, existingDay); err != nil {
				return err
			}
		}

		// 3.5. Генерируем новые слоты (для дня отпуска список пуст)
		var slots []*domain.TimeSlot
		if req.IsAvailable {
			slots, err = domain.GenerateTimeSlots(req.TrainerID, date, toTimeRanges(req.PeakSlots), toTimeRanges(req.AlternativeSlots))
			if err != nil {
				uc.logger.Warn("SetAvailability: slot generation failed: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
			}
		}
		totalMinutes := domain.SumDurations(slots)

		// 3.6. Обновляем дневную запись
		day, err := uc.availabilityRepo.UpsertDaily(txCtx, &domain.DailyAvailability{
			TrainerID:       req.TrainerID,
			WeekID:          week.ID,
			Date:            date,
			IsAvailable:     req.IsAvailable,
			TotalDayMinutes: totalMinutes,
		})
		if err != nil {
			uc.logger.Error("SetAvailability: failed to upsert daily record: %v", err)
			return fmt.Errorf("%w: failed to upsert daily record: %v", ErrInternal, err)
		}

		// 3.7. Разрушительная замена: старые слоты дня удаляются целиком
		if err := uc.timeSlotRepo.DeleteByDailyAvailability(txCtx, day.ID); err != nil {
			uc.logger.Error("SetAvailability: failed to delete old slots: %v", err)
			return fmt.Errorf("%w: failed to delete old slots: %v", ErrInternal, err)
		}

		var created []*domain.TimeSlot
		if len(slots) > 0 {
			for _, slot := range slots {
				slot.DailyAvailabilityID = &day.ID
			}
			created, err = uc.timeSlotRepo.CreateBatch(txCtx, slots)
			if err != nil {
				uc.logger.Error("SetAvailability: failed to create slots: %v", err)
				return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
			}
		}

		// 3.8. Пересчитываем суммарные минуты недели
		weekTotal, err := uc.availabilityRepo.RecomputeWeekBookedMinutes(txCtx, week.ID)
		if err != nil {
			uc.logger.Error("SetAvailability: failed to recompute week minutes: %v", err)
			return fmt.Errorf("%w: failed to recompute week minutes: %v", ErrInternal, err)
		}

		resp = buildResponse(day, week.RequiredMinutes, weekTotal, created)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetAvailability: successfully set availability for trainer=%d, date=%s, minutes=%d",
		req.TrainerID, date.Format(domain.DateFormat), resp.TotalDayMinutes)
	return resp, nil
}

// checkTrainerRole проверяет, что пользователь существует и является тренером
// При недоступности IdentityService операция продолжается без проверки.
func (uc *UseCase) checkTrainerRole(ctx context.Context, trainerID int64) error {
	user, err := uc.identityClient.GetUserWithGracefulDegradation(ctx, trainerID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("SetAvailability: trainer id=%d not found", trainerID)
			return ErrTrainerNotFound
		}
		uc.logger.Warn("SetAvailability: identity check skipped for trainer=%d: %v", trainerID, err)
		return nil
	}

	if !user.IsTrainer() {
		uc.logger.Warn("SetAvailability: user id=%d has role %s, expected Trainer", trainerID, user.Role)
		return ErrNotTrainer
	}

	return nil
}

// checkLeaveLimit проверяет месячный лимит отпускных дней
// Повторная установка отпуска на тот же день лимит не расходует.
func (uc *UseCase) checkLeaveLimit(ctx context.Context, trainerID int64, date time.Time, existingDay *domain.DailyAvailability) error {
	if existingDay != nil && existingDay.IsLeaveDay() {
		return nil
	}

	monthStart, monthEnd := datetime.MonthBounds(date)
	leaveCount, err := uc.availabilityRepo.CountLeaveDays(ctx, trainerID, monthStart, monthEnd)
	if err != nil {
		uc.logger.Error("SetAvailability: failed to count leave days: %v", err)
		return fmt.Errorf("%w: failed to count leave days: %v", ErrInternal, err)
	}

	if leaveCount >= domain.MaxLeaveDaysPerMonth {
		uc.logger.Warn("SetAvailability: trainer=%d already has %d leave days in %s",
			trainerID, leaveCount, date.Format("2006-01"))
		return ErrLeaveLimitExceeded
	}

	return nil
}

// toTimeRanges конвертирует диапазоны запроса в доменные
func toTimeRanges(ranges []SlotRange) []domain.TimeRange {
	result := make([]domain.TimeRange, len(ranges))
	for i, r := range ranges {
		result[i] = domain.TimeRange{Start: r.Start, End: r.End}
	}
	return result
}

// buildResponse собирает ответ из обновлённых записей
func buildResponse(day *domain.DailyAvailability, requiredMinutes, weekTotal int, slots []*domain.TimeSlot) *Response {
	resp := &Response{
		TrainerID:          day.TrainerID,
		Date:               day.Date,
		DayOfWeek:          day.DayOfWeek(),
		IsAvailable:        day.IsAvailable,
		TotalDayMinutes:    day.TotalDayMinutes,
		RequiredMinutes:    requiredMinutes,
		TotalBookedMinutes: weekTotal,
		PeakSlots:          []SlotView{},
		AlternativeSlots:   []SlotView{},
	}

	for _, s := range slots {
		view := SlotView{
			ID:       s.ID,
			Start:    s.StartTime,
			End:      s.EndTime,
			IsBooked: s.IsBooked,
		}
		if s.SlotType == domain.SlotTypePeak {
			resp.PeakSlots = append(resp.PeakSlots, view)
		} else {
			resp.AlternativeSlots = append(resp.AlternativeSlots, view)
		}
	}

	return resp
}
