package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/timeslot"
)

// UseCase use case переноса бронирования на другой слот
//
// Перенос атомарен: старый слот освобождается, новый помечается занятым
// и бронирование переключается на него в одной сериализуемой транзакции.
// OriginalTimeSlotID не меняется - по нему восстанавливается история.
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

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, newSlot=%d", req.BookingID, req.NewTimeSlotID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.NewTimeSlotID <= 0 {
		return nil, fmt.Errorf("%w: newTimeSlotID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking
	var newSlot *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !b.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d is cancelled", b.ID)
			return ErrBookingCancelled
		}
		if b.TimeSlotID == req.NewTimeSlotID {
			uc.logger.Warn("RescheduleBooking: booking id=%d already holds slot id=%d", b.ID, req.NewTimeSlotID)
			return ErrSameSlot
		}

		// 2. Получаем целевой слот с блокировкой строки
		newSlot, err = uc.timeSlotRepo.GetByID(txCtx, req.NewTimeSlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("RescheduleBooking: target slot id=%d not found", req.NewTimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get target slot id=%d: %v", req.NewTimeSlotID, err)
			return fmt.Errorf("%w: failed to get target slot: %v", ErrInternal, err)
		}

		if !newSlot.BelongsTo(b.TrainerID) {
			uc.logger.Warn("RescheduleBooking: target slot id=%d belongs to trainer=%d, booking trainer=%d",
				newSlot.ID, newSlot.TrainerID, b.TrainerID)
			return ErrTrainerMismatch
		}
		if !newSlot.IsFree() {
			uc.logger.Warn("RescheduleBooking: target slot id=%d is already booked", newSlot.ID)
			return ErrSlotAlreadyBooked
		}

		// 3. Занимаем новый слот условным UPDATE
		if err := uc.timeSlotRepo.MarkBooked(txCtx, newSlot.ID); err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("RescheduleBooking: lost race for slot id=%d", newSlot.ID)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("RescheduleBooking: failed to mark slot id=%d booked: %v", newSlot.ID, err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		// 4. Освобождаем прежний слот
		if err := uc.timeSlotRepo.MarkFree(txCtx, b.TimeSlotID); err != nil {
			if !errors.Is(err, timeslotRepo.ErrSlotNotBooked) {
				uc.logger.Error("RescheduleBooking: failed to free slot id=%d: %v", b.TimeSlotID, err)
				return fmt.Errorf("%w: failed to free slot: %v", ErrInternal, err)
			}
			uc.logger.Warn("RescheduleBooking: slot id=%d was not booked while booking id=%d held it",
				b.TimeSlotID, b.ID)
		}

		// 5. Переключаем бронирование на новый слот
		if err := uc.bookingRepo.Reschedule(txCtx, b.ID, newSlot.ID, now); err != nil {
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		b.TimeSlotID = newSlot.ID
		b.RescheduledCount++
		b.LastRescheduledAt = &now
		result = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully moved booking id=%d to slot id=%d (count=%d)",
		result.ID, result.TimeSlotID, result.RescheduledCount)

	return &Response{
		ID:                 result.ID,
		CustomerID:         result.CustomerID,
		TrainerID:          result.TrainerID,
		TimeSlotID:         result.TimeSlotID,
		OriginalTimeSlotID: result.OriginalTimeSlotID,
		RescheduledCount:   result.RescheduledCount,
		LastRescheduledAt:  now,
		SlotDate:           newSlot.Date,
		StartTime:          newSlot.StartTime,
		EndTime:            newSlot.EndTime,
	}, nil
}
