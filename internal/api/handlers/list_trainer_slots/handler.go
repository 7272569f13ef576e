package list_trainer_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainerService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/service/slots"
	"github.com/m04kA/SMC-TrainerService/internal/service/slots/models"
	"github.com/m04kA/SMC-TrainerService/pkg/ptr"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/slots
// Query params: date, createdBy, page, pageSize (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/slots - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	req, err := toServiceRequest(trainerID, r)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListTrainerSlots(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/slots - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /trainers/{id}/slots - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/slots - Slots retrieved: trainer_id=%d, count=%d, total=%d",
		trainerID, len(result.Slots), result.Pagination.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// toServiceRequest собирает запрос сервиса из query-параметров
func toServiceRequest(trainerID int64, r *http.Request) (*models.ListSlotsRequest, error) {
	req := &models.ListSlotsRequest{TrainerID: trainerID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if createdByStr := r.URL.Query().Get("createdBy"); createdByStr != "" {
		createdBy, err := strconv.ParseInt(createdByStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CreatedBy = ptr.Ptr(createdBy)
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}

	if pageSizeStr := r.URL.Query().Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil {
			return nil, err
		}
		req.PageSize = pageSize
	}

	return req, nil
}
