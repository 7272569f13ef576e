package models

import (
	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

// UserSummary краткий профиль пользователя из IdentityService
// nil в ответе означает, что профиль недоступен (graceful degradation).
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// FromUser конвертирует модель IdentityService в краткий профиль
func FromUser(u *identityservice.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}

// SlotSummary краткое представление слота внутри бронирования
type SlotSummary struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	SlotType        string `json:"slotType"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromDomainSlot конвертирует доменный слот в краткое представление
func FromDomainSlot(s *domain.TimeSlot) *SlotSummary {
	if s == nil {
		return nil
	}
	return &SlotSummary{
		ID:              s.ID,
		Date:            s.Date.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		SlotType:        string(s.SlotType),
		DurationMinutes: s.DurationMinutes,
	}
}

// BookingResponse полное представление бронирования
type BookingResponse struct {
	ID                  int64        `json:"id"`
	CustomerID          int64        `json:"customerId"`
	TrainerID           int64        `json:"trainerId"`
	TimeSlotID          int64        `json:"timeSlotId"`
	OriginalTimeSlotID  int64        `json:"originalTimeSlotId"`
	IsCancelled         bool         `json:"isCancelled"`
	IsAttendedByTrainer *bool        `json:"isAttendedByTrainer"`
	RescheduledCount    int          `json:"rescheduledCount"`
	LastRescheduledAt   *string      `json:"lastRescheduledAt,omitempty"`
	CancelledAt         *string      `json:"cancelledAt,omitempty"`
	Accolades           []int64      `json:"accolades"`
	CreatedAt           string       `json:"createdAt"`
	Customer            *UserSummary `json:"customer,omitempty"`
	Trainer             *UserSummary `json:"trainer,omitempty"`
	TimeSlot            *SlotSummary `json:"timeSlot,omitempty"`
}

// Pagination блок пагинации списочных ответов
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// BookingListResponse ответ со списком бронирований тренера
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}

// FromDomainBooking конвертирует доменную модель в DTO
func FromDomainBooking(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID,
		CustomerID:          b.CustomerID,
		TrainerID:           b.TrainerID,
		TimeSlotID:          b.TimeSlotID,
		OriginalTimeSlotID:  b.OriginalTimeSlotID,
		IsCancelled:         b.IsCancelled,
		IsAttendedByTrainer: b.IsAttendedByTrainer,
		RescheduledCount:    b.RescheduledCount,
		Accolades:           b.Accolades,
		CreatedAt:           b.CreatedAt.Format(domain.DateTimeFormat),
	}
	if resp.Accolades == nil {
		resp.Accolades = []int64{}
	}
	if b.LastRescheduledAt != nil {
		v := b.LastRescheduledAt.Format(domain.DateTimeFormat)
		resp.LastRescheduledAt = &v
	}
	if b.CancelledAt != nil {
		v := b.CancelledAt.Format(domain.DateTimeFormat)
		resp.CancelledAt = &v
	}
	return resp
}
