package dashboard_analytics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainerService/internal/service/analytics"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/analytics/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/analytics/dashboard - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	result, err := h.service.Dashboard(r.Context(), trainerID)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/analytics/dashboard - Invalid input: trainer_id=%d", trainerID)
			handlers.RespondBadRequest(w, msgInvalidTrainerID)

		default:
			h.logger.Error("GET /trainers/{id}/analytics/dashboard - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/analytics/dashboard - Dashboard retrieved: trainer_id=%d", trainerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
