package create_time_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	identityClient "github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-TrainerService/pkg/datetime"
	"github.com/m04kA/SMC-TrainerService/pkg/ptr"
)

// UseCase use case прямого создания слотов администратором
//
// В отличие от установки доступности ничего не перегенерирует: слоты
// добавляются к уже существующим и не участвуют в дневных минутах.
type UseCase struct {
	timeSlotRepo   TimeSlotRepository
	identityClient IdentityClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeSlotRepo TimeSlotRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeSlotRepo:   timeSlotRepo,
		identityClient: identityClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTimeSlots: trainer=%d, createdBy=%d, date=%s, peak=%d, alternative=%d",
		req.TrainerID, req.CreatedBy, req.Date.Format(domain.DateFormat),
		len(req.PeakSlots), len(req.AlternativeSlots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права создателя (graceful degradation при недоступности сервиса)
	if err := uc.checkCreator(ctx, req.CreatedBy, req.TrainerID); err != nil {
		return nil, err
	}

	date := datetime.DayStart(req.Date)

	// 3. Генерируем слоты из диапазонов
	slots, err := domain.GenerateTimeSlots(req.TrainerID, date, toTimeRanges(req.PeakSlots), toTimeRanges(req.AlternativeSlots))
	if err != nil {
		uc.logger.Warn("CreateTimeSlots: slot generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
	}
	for _, slot := range slots {
		slot.CreatedBy = ptr.Ptr(req.CreatedBy)
	}

	// 4. Сохраняем пачкой в транзакции
	var created []*domain.TimeSlot
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = uc.timeSlotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			uc.logger.Error("CreateTimeSlots: failed to create slots: %v", err)
			return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTimeSlots: successfully created %d slots for trainer=%d", len(created), req.TrainerID)

	resp := &Response{
		TrainerID: req.TrainerID,
		Date:      date,
		CreatedBy: req.CreatedBy,
		Slots:     make([]SlotView, len(created)),
	}
	for i, s := range created {
		resp.Slots[i] = SlotView{
			ID:              s.ID,
			Start:           s.StartTime,
			End:             s.EndTime,
			SlotType:        string(s.SlotType),
			DurationMinutes: s.DurationMinutes,
		}
	}
	return resp, nil
}

// checkCreator проверяет, что создатель - админ или сам тренер
// При недоступности IdentityService операция продолжается без проверки.
func (uc *UseCase) checkCreator(ctx context.Context, createdBy, trainerID int64) error {
	user, err := uc.identityClient.GetUserWithGracefulDegradation(ctx, createdBy)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("CreateTimeSlots: creator id=%d not found", createdBy)
			return ErrCreatorNotFound
		}
		uc.logger.Warn("CreateTimeSlots: identity check skipped for creator=%d: %v", createdBy, err)
		return nil
	}

	if user.IsAdmin() {
		return nil
	}
	if user.IsTrainer() && createdBy == trainerID {
		return nil
	}

	uc.logger.Warn("CreateTimeSlots: creator id=%d (role %s) may not create slots for trainer=%d",
		createdBy, user.Role, trainerID)
	return ErrNotAllowed
}

// toTimeRanges конвертирует диапазоны запроса в доменные
func toTimeRanges(ranges []SlotRange) []domain.TimeRange {
	result := make([]domain.TimeRange, len(ranges))
	for i, r := range ranges {
		result[i] = domain.TimeRange{Start: r.Start, End: r.End}
	}
	return result
}
