package set_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	setAvailability "github.com/m04kA/SMC-TrainerService/internal/usecase/set_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidSlotRange   = "диапазон слота имеет нулевую или отрицательную длительность"
	msgTrainerNotFound    = "тренер не найден"
	msgNotTrainer         = "пользователь не является тренером"
	msgLeaveLimitExceeded = "лимит отпускных дней в месяце исчерпан"
	msgDayHasBookedSlots  = "на выбранный день есть забронированные слоты"
)

type Handler struct {
	useCase SetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/trainers/{trainerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /trainers/{id}/availability - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /trainers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(trainerID)
	if err != nil {
		h.logger.Warn("PUT /trainers/{id}/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, setAvailability.ErrInvalidInput):
			h.logger.Warn("PUT /trainers/{id}/availability - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, setAvailability.ErrInvalidSlotRange):
			h.logger.Warn("PUT /trainers/{id}/availability - Invalid slot range: trainer_id=%d", trainerID)
			handlers.RespondBadRequest(w, msgInvalidSlotRange)

		case errors.Is(err, setAvailability.ErrTrainerNotFound):
			h.logger.Warn("PUT /trainers/{id}/availability - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, setAvailability.ErrNotTrainer):
			h.logger.Warn("PUT /trainers/{id}/availability - Not a trainer: trainer_id=%d", trainerID)
			handlers.RespondForbidden(w, msgNotTrainer)

		case errors.Is(err, setAvailability.ErrLeaveLimitExceeded):
			h.logger.Warn("PUT /trainers/{id}/availability - Leave limit exceeded: trainer_id=%d", trainerID)
			handlers.RespondConflict(w, msgLeaveLimitExceeded)

		case errors.Is(err, setAvailability.ErrDayHasBookedSlots):
			h.logger.Warn("PUT /trainers/{id}/availability - Day has booked slots: trainer_id=%d", trainerID)
			handlers.RespondConflict(w, msgDayHasBookedSlots)

		default:
			h.logger.Error("PUT /trainers/{id}/availability - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /trainers/{id}/availability - Availability set: trainer_id=%d, date=%s, minutes=%d",
		trainerID, req.Date, result.TotalDayMinutes)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
