package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	rescheduleBooking "github.com/m04kA/SMC-TrainerService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "бронирование отменено и не может быть перенесено"
	msgSlotNotFound       = "целевой временной слот не найден"
	msgSlotAlreadyBooked  = "целевой временной слот уже забронирован"
	msgTrainerMismatch    = "целевой слот принадлежит другому тренеру"
	msgSameSlot           = "бронирование уже удерживает этот слот"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rescheduleBooking.Request{
		BookingID:     bookingID,
		NewTimeSlotID: req.NewTimeSlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/{id}/reschedule - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, rescheduleBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Target slot not found: slot_id=%d", req.NewTimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, rescheduleBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings/{id}/reschedule - Target slot booked: slot_id=%d", req.NewTimeSlotID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, rescheduleBooking.ErrTrainerMismatch):
			h.logger.Warn("POST /bookings/{id}/reschedule - Trainer mismatch: booking_id=%d, slot_id=%d",
				bookingID, req.NewTimeSlotID)
			handlers.RespondConflict(w, msgTrainerMismatch)

		case errors.Is(err, rescheduleBooking.ErrSameSlot):
			h.logger.Warn("POST /bookings/{id}/reschedule - Same slot: booking_id=%d, slot_id=%d",
				bookingID, req.NewTimeSlotID)
			handlers.RespondBadRequest(w, msgSameSlot)

		default:
			h.logger.Error("POST /bookings/{id}/reschedule - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule - Booking rescheduled: booking_id=%d, new_slot_id=%d, count=%d",
		result.ID, result.TimeSlotID, result.RescheduledCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
