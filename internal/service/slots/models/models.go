package models

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
)

// ListSlotsRequest запрос на получение слотов тренера
type ListSlotsRequest struct {
	TrainerID int64
	Date      *time.Time
	CreatedBy *int64 // Фильтр по создателю (админские слоты), опционально
	Page      int
	PageSize  int
}

// Normalize приводит пагинацию к допустимым значениям
func (r *ListSlotsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = domain.DefaultPage
	}
	if r.PageSize < 1 {
		r.PageSize = domain.DefaultPageSize
	}
	if r.PageSize > domain.MaxPageSize {
		r.PageSize = domain.MaxPageSize
	}
}

// TimeSlotResponse представление временного слота
type TimeSlotResponse struct {
	ID                  int64  `json:"id"`
	DailyAvailabilityID *int64 `json:"dailyAvailabilityId,omitempty"`
	TrainerID           int64  `json:"trainerId"`
	Date                string `json:"date"`      // "2026-07-10"
	StartTime           string `json:"startTime"` // "09:00"
	EndTime             string `json:"endTime"`   // "10:00"
	SlotType            string `json:"slotType"`
	DurationMinutes     int    `json:"durationMinutes"`
	IsBooked            bool   `json:"isBooked"`
	CreatedBy           *int64 `json:"createdBy,omitempty"`
}

// Pagination блок пагинации списочных ответов
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination вычисляет блок пагинации
func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots      []TimeSlotResponse `json:"slots"`
	Pagination Pagination         `json:"pagination"`
}

// FromDomainSlot конвертирует доменную модель в DTO
func FromDomainSlot(s *domain.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:                  s.ID,
		DailyAvailabilityID: s.DailyAvailabilityID,
		TrainerID:           s.TrainerID,
		Date:                s.Date.Format(domain.DateFormat),
		StartTime:           s.StartTime.String(),
		EndTime:             s.EndTime.String(),
		SlotType:            string(s.SlotType),
		DurationMinutes:     s.DurationMinutes,
		IsBooked:            s.IsBooked,
		CreatedBy:           s.CreatedBy,
	}
}

// FromDomainSlotList конвертирует список слотов с пагинацией
func FromDomainSlotList(slots []*domain.TimeSlot, total int64, page, pageSize int) *SlotListResponse {
	resp := &SlotListResponse{
		Slots:      make([]TimeSlotResponse, len(slots)),
		Pagination: NewPagination(total, page, pageSize),
	}
	for i, s := range slots {
		resp.Slots[i] = FromDomainSlot(s)
	}
	return resp
}
