package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	timeslotRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/timeslot"
	identityClient "github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

// UseCase use case бронирования слота клиентом
//
// Гонка двойного бронирования закрывается двумя рубежами: SELECT FOR
// UPDATE на строке слота и условным UPDATE (is_booked = false) внутри
// сериализуемой транзакции. Проигравший конкурент получает
// ErrSlotAlreadyBooked, а не второе бронирование.
type UseCase struct {
	bookingRepo    BookingRepository
	timeSlotRepo   TimeSlotRepository
	identityClient IdentityClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	timeSlotRepo TimeSlotRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		timeSlotRepo:   timeSlotRepo,
		identityClient: identityClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: customer=%d, trainer=%d, slot=%d",
		req.CustomerID, req.TrainerID, req.TimeSlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем клиента (graceful degradation при недоступности сервиса)
	if err := uc.checkCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	var result *domain.Booking
	var slot *domain.TimeSlot

	// 3. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем слот с блокировкой строки (FOR UPDATE)
		var err error
		slot, err = uc.timeSlotRepo.GetByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("BookSlot: slot id=%d not found", req.TimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("BookSlot: failed to get slot id=%d: %v", req.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 3.2. Предусловия бронирования
		if !slot.BelongsTo(req.TrainerID) {
			uc.logger.Warn("BookSlot: slot id=%d belongs to trainer=%d, requested trainer=%d",
				slot.ID, slot.TrainerID, req.TrainerID)
			return ErrTrainerMismatch
		}
		if !slot.IsFree() {
			uc.logger.Warn("BookSlot: slot id=%d is already booked", slot.ID)
			return ErrSlotAlreadyBooked
		}

		// 3.3. Помечаем слот занятым условным UPDATE
		if err := uc.timeSlotRepo.MarkBooked(txCtx, slot.ID); err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("BookSlot: lost race for slot id=%d", slot.ID)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("BookSlot: failed to mark slot id=%d booked: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		// 3.4. Создаем бронирование; исходный слот фиксируется навсегда
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerID:         req.CustomerID,
			TrainerID:          req.TrainerID,
			TimeSlotID:         slot.ID,
			OriginalTimeSlotID: slot.ID,
			Accolades:          []int64{},
		})
		if err != nil {
			uc.logger.Error("BookSlot: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully created booking id=%d for slot id=%d", result.ID, slot.ID)

	return &Response{
		ID:                 result.ID,
		CustomerID:         result.CustomerID,
		TrainerID:          result.TrainerID,
		TimeSlotID:         result.TimeSlotID,
		OriginalTimeSlotID: result.OriginalTimeSlotID,
		SlotDate:           slot.Date,
		StartTime:          slot.StartTime,
		EndTime:            slot.EndTime,
		CreatedAt:          result.CreatedAt,
	}, nil
}

// checkCustomer проверяет существование клиента в IdentityService
// При недоступности сервиса бронирование продолжается без проверки.
func (uc *UseCase) checkCustomer(ctx context.Context, customerID int64) error {
	_, err := uc.identityClient.GetUserWithGracefulDegradation(ctx, customerID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("BookSlot: customer id=%d not found", customerID)
			return ErrCustomerNotFound
		}
		uc.logger.Warn("BookSlot: identity check skipped for customer=%d: %v", customerID, err)
	}
	return nil
}
