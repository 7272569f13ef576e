package mark_attended

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainerService/internal/api/middleware"
	"github.com/m04kA/SMC-TrainerService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "бронирование отменено"
	msgForbidden          = "бронирование принадлежит другому тренеру"
)

// MarkAttendedRequest HTTP request model
type MarkAttendedRequest struct {
	Attended bool `json:"attended"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/attendance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/attendance - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	trainerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/attendance - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req MarkAttendedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/attendance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.MarkAttended(r.Context(), bookingID, trainerID, req.Attended)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/attendance - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrTrainerMismatch):
			h.logger.Warn("PATCH /bookings/{id}/attendance - Trainer mismatch: booking_id=%d, trainer_id=%d",
				bookingID, trainerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrBookingCancelled):
			h.logger.Warn("PATCH /bookings/{id}/attendance - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		default:
			h.logger.Error("PATCH /bookings/{id}/attendance - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/attendance - Attendance marked: booking_id=%d, attended=%t",
		bookingID, req.Attended)
	handlers.RespondJSON(w, http.StatusOK, result)
}
