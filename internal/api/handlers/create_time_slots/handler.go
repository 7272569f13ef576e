package create_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainerService/internal/api/middleware"
	createTimeSlots "github.com/m04kA/SMC-TrainerService/internal/usecase/create_time_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidSlotRange   = "диапазон слота имеет нулевую или отрицательную длительность"
	msgCreatorNotFound    = "создатель слотов не найден"
	msgNotAllowed         = "недостаточно прав для создания слотов"
)

type Handler struct {
	useCase CreateTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase CreateTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trainers/{trainerId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trainers/{id}/slots - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	createdBy, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /trainers/{id}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTimeSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainers/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(trainerID, createdBy)
	if err != nil {
		h.logger.Warn("POST /trainers/{id}/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTimeSlots.ErrInvalidInput):
			h.logger.Warn("POST /trainers/{id}/slots - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createTimeSlots.ErrInvalidSlotRange):
			h.logger.Warn("POST /trainers/{id}/slots - Invalid slot range: trainer_id=%d", trainerID)
			handlers.RespondBadRequest(w, msgInvalidSlotRange)

		case errors.Is(err, createTimeSlots.ErrCreatorNotFound):
			h.logger.Warn("POST /trainers/{id}/slots - Creator not found: user_id=%d", createdBy)
			handlers.RespondNotFound(w, msgCreatorNotFound)

		case errors.Is(err, createTimeSlots.ErrNotAllowed):
			h.logger.Warn("POST /trainers/{id}/slots - Not allowed: user_id=%d, trainer_id=%d", createdBy, trainerID)
			handlers.RespondForbidden(w, msgNotAllowed)

		default:
			h.logger.Error("POST /trainers/{id}/slots - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trainers/{id}/slots - Slots created: trainer_id=%d, created_by=%d, count=%d",
		trainerID, createdBy, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
