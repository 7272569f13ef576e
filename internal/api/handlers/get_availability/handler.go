package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/service/availability"
)

const (
	msgInvalidTrainerID     = "некорректный ID тренера"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate          = "отсутствует параметр date"
	msgAvailabilityNotFound = "доступность на эту дату не найдена"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/availability - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /trainers/{id}/availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByTrainerAndDate(r.Context(), trainerID, date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("GET /trainers/{id}/availability - Not found: trainer_id=%d, date=%s", trainerID, dateStr)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		default:
			h.logger.Error("GET /trainers/{id}/availability - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/availability - Availability retrieved: trainer_id=%d, date=%s", trainerID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
