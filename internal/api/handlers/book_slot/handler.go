package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainerService/internal/api/middleware"
	bookSlot "github.com/m04kA/SMC-TrainerService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotFound       = "временной слот не найден"
	msgSlotAlreadyBooked  = "временной слот уже забронирован"
	msgTrainerMismatch    = "слот принадлежит другому тренеру"
	msgCustomerNotFound   = "клиент не найден"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookSlot.Request{
		CustomerID: customerID,
		TrainerID:  req.TrainerID,
		TimeSlotID: req.TimeSlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: slot_id=%d", req.TimeSlotID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, bookSlot.ErrTrainerMismatch):
			h.logger.Warn("POST /bookings - Trainer mismatch: slot_id=%d, trainer_id=%d", req.TimeSlotID, req.TrainerID)
			handlers.RespondConflict(w, msgTrainerMismatch)

		case errors.Is(err, bookSlot.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("POST /bookings - Failed: customer_id=%d, slot_id=%d, error=%v",
				customerID, req.TimeSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, customer_id=%d, slot_id=%d",
		result.ID, customerID, result.TimeSlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
