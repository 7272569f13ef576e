package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/timeslot"
)

// UseCase use case отмены бронирования
//
// Отмена и освобождение слота происходят в одной транзакции: либо
// бронирование отменено и слот снова свободен, либо не изменилось ничего.
type UseCase struct {
	bookingRepo  BookingRepository
	timeSlotRepo TimeSlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	timeSlotRepo TimeSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeSlotRepo: timeSlotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки (FOR UPDATE)
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if b.IsCancelled {
			uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", req.BookingID)
			return ErrAlreadyCancelled
		}

		// 2. Отменяем условным UPDATE (is_cancelled = false)
		if err := uc.bookingRepo.Cancel(txCtx, b.ID, now); err != nil {
			if errors.Is(err, bookingRepo.ErrAlreadyCancelled) {
				return ErrAlreadyCancelled
			}
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// 3. Освобождаем удерживаемый слот
		if err := uc.timeSlotRepo.MarkFree(txCtx, b.TimeSlotID); err != nil {
			if !errors.Is(err, timeslotRepo.ErrSlotNotBooked) {
				uc.logger.Error("CancelBooking: failed to free slot id=%d: %v", b.TimeSlotID, err)
				return fmt.Errorf("%w: failed to free slot: %v", ErrInternal, err)
			}
			// Слот уже свободен - рассинхронизация, фиксируем в логах
			uc.logger.Warn("CancelBooking: slot id=%d was not booked while booking id=%d was active",
				b.TimeSlotID, b.ID)
		}

		result = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d, freed slot id=%d",
		result.ID, result.TimeSlotID)

	return &Response{
		ID:          result.ID,
		CustomerID:  result.CustomerID,
		TrainerID:   result.TrainerID,
		TimeSlotID:  result.TimeSlotID,
		IsCancelled: true,
		CancelledAt: now,
	}, nil
}
