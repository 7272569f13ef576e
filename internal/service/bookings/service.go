package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TrainerService/internal/service/bookings/models"
)

// Service сервис чтения и обслуживания бронирований
// Создание, отмена и перенос идут через usecase-слой с транзакциями.
type Service struct {
	bookingRepo    BookingRepository
	timeSlotRepo   TimeSlotRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	timeSlotRepo TimeSlotRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		timeSlotRepo:   timeSlotRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// GetByID получает бронирование с профилями участников и слотом
// Профили подтягиваются с graceful degradation: при недоступности
// IdentityService бронирование возвращается без профилей.
func (s *Service) GetByID(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", bookingID)

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(b)
	s.enrich(ctx, &resp)

	s.logger.Info("GetByID: successfully fetched booking id=%d", bookingID)
	return &resp, nil
}

// ListByTrainer получает бронирования тренера с пагинацией
// Сортировка по дате создания, новые первыми.
func (s *Service) ListByTrainer(ctx context.Context, trainerID int64, page, pageSize int) (*models.BookingListResponse, error) {
	if trainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}
	if page < 1 {
		page = domain.DefaultPage
	}
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}

	s.logger.Info("ListByTrainer: fetching bookings for trainer=%d, page=%d, pageSize=%d",
		trainerID, page, pageSize)

	bookingList, total, err := s.bookingRepo.ListByTrainer(ctx, trainerID, page, pageSize)
	if err != nil {
		s.logger.Error("ListByTrainer: repository error for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: ListByTrainer - repository error: %v", ErrInternal, err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, len(bookingList)),
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
	for i, b := range bookingList {
		resp.Bookings[i] = models.FromDomainBooking(b)
		s.enrich(ctx, &resp.Bookings[i])
	}

	s.logger.Info("ListByTrainer: successfully fetched %d bookings for trainer=%d (total=%d)",
		len(bookingList), trainerID, total)
	return resp, nil
}

// MarkAttended проставляет отметку тренера о посещении занятия
// Отметку может менять только тренер, которому принадлежит бронирование.
func (s *Service) MarkAttended(ctx context.Context, bookingID, trainerID int64, attended bool) (*models.BookingResponse, error) {
	s.logger.Info("MarkAttended: booking id=%d, trainer=%d, attended=%t", bookingID, trainerID, attended)

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("MarkAttended: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("MarkAttended: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: MarkAttended - repository error: %v", ErrInternal, err)
	}

	if b.TrainerID != trainerID {
		s.logger.Warn("MarkAttended: booking id=%d belongs to trainer=%d, requested by trainer=%d",
			bookingID, b.TrainerID, trainerID)
		return nil, ErrTrainerMismatch
	}
	if b.IsCancelled {
		s.logger.Warn("MarkAttended: booking id=%d is cancelled", bookingID)
		return nil, ErrBookingCancelled
	}

	if err := s.bookingRepo.SetAttendance(ctx, bookingID, attended); err != nil {
		s.logger.Error("MarkAttended: failed to set attendance for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: MarkAttended - failed to set attendance: %v", ErrInternal, err)
	}

	b.IsAttendedByTrainer = &attended
	resp := models.FromDomainBooking(b)
	s.enrich(ctx, &resp)

	s.logger.Info("MarkAttended: successfully updated booking id=%d, attended=%t", bookingID, attended)
	return &resp, nil
}

// UpdateAccolades полностью заменяет список наград бронирования
func (s *Service) UpdateAccolades(ctx context.Context, bookingID, trainerID int64, accolades []int64) (*models.BookingResponse, error) {
	s.logger.Info("UpdateAccolades: booking id=%d, trainer=%d, accolades=%d", bookingID, trainerID, len(accolades))

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateAccolades: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateAccolades: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateAccolades - repository error: %v", ErrInternal, err)
	}

	if b.TrainerID != trainerID {
		s.logger.Warn("UpdateAccolades: booking id=%d belongs to trainer=%d, requested by trainer=%d",
			bookingID, b.TrainerID, trainerID)
		return nil, ErrTrainerMismatch
	}

	if accolades == nil {
		accolades = []int64{}
	}
	if err := s.bookingRepo.UpdateAccolades(ctx, bookingID, accolades); err != nil {
		s.logger.Error("UpdateAccolades: failed to update accolades for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateAccolades - failed to update: %v", ErrInternal, err)
	}

	b.Accolades = accolades
	resp := models.FromDomainBooking(b)
	s.enrich(ctx, &resp)

	s.logger.Info("UpdateAccolades: successfully updated booking id=%d", bookingID)
	return &resp, nil
}

// enrich дополняет ответ профилями участников и слотом
// Ошибки обогащения не фатальны: ответ остаётся без соответствующего блока.
func (s *Service) enrich(ctx context.Context, resp *models.BookingResponse) {
	if customer, err := s.identityClient.GetUserWithGracefulDegradation(ctx, resp.CustomerID); err == nil {
		resp.Customer = models.FromUser(customer)
	}
	if trainer, err := s.identityClient.GetUserWithGracefulDegradation(ctx, resp.TrainerID); err == nil {
		resp.Trainer = models.FromUser(trainer)
	}

	slot, err := s.timeSlotRepo.GetByID(ctx, resp.TimeSlotID)
	if err != nil {
		if !errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			s.logger.Warn("enrich: failed to get slot id=%d: %v", resp.TimeSlotID, err)
		}
		return
	}
	resp.TimeSlot = models.FromDomainSlot(slot)
}
