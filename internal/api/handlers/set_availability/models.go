package set_availability

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	setAvailability "github.com/m04kA/SMC-TrainerService/internal/usecase/set_availability"
	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// SlotRangeRequest диапазон времени в HTTP запросе
type SlotRangeRequest struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "10:00"
}

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	Date             string             `json:"date"` // "2026-07-10"
	IsAvailable      bool               `json:"isAvailable"`
	PeakSlots        []SlotRangeRequest `json:"peakSlots,omitempty"`
	AlternativeSlots []SlotRangeRequest `json:"alternativeSlots,omitempty"`
}

// SlotViewResponse представление слота в HTTP ответе
type SlotViewResponse struct {
	ID       int64  `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	IsBooked bool   `json:"isBooked"`
}

// SetAvailabilityResponse HTTP response model
type SetAvailabilityResponse struct {
	TrainerID          int64              `json:"trainerId"`
	Date               string             `json:"date"`
	DayOfWeek          string             `json:"dayOfWeek"`
	IsAvailable        bool               `json:"isAvailable"`
	TotalDayMinutes    int                `json:"totalDayMinutes"`
	RequiredMinutes    int                `json:"requiredMinutes"`
	TotalBookedMinutes int                `json:"totalBookedMinutes"`
	PeakSlots          []SlotViewResponse `json:"peakSlots"`
	AlternativeSlots   []SlotViewResponse `json:"alternativeSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetAvailabilityRequest) ToUseCaseRequest(trainerID int64) (*setAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	peak, err := toSlotRanges(r.PeakSlots)
	if err != nil {
		return nil, err
	}
	alternative, err := toSlotRanges(r.AlternativeSlots)
	if err != nil {
		return nil, err
	}

	return &setAvailability.Request{
		TrainerID:        trainerID,
		Date:             date,
		IsAvailable:      r.IsAvailable,
		PeakSlots:        peak,
		AlternativeSlots: alternative,
	}, nil
}

func toSlotRanges(ranges []SlotRangeRequest) ([]setAvailability.SlotRange, error) {
	result := make([]setAvailability.SlotRange, len(ranges))
	for i, r := range ranges {
		start, err := types.NewTimeStringFromString(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(r.End)
		if err != nil {
			return nil, err
		}
		result[i] = setAvailability.SlotRange{Start: start, End: end}
	}
	return result, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setAvailability.Response) *SetAvailabilityResponse {
	out := &SetAvailabilityResponse{
		TrainerID:          resp.TrainerID,
		Date:               resp.Date.Format(domain.DateFormat),
		DayOfWeek:          resp.DayOfWeek,
		IsAvailable:        resp.IsAvailable,
		TotalDayMinutes:    resp.TotalDayMinutes,
		RequiredMinutes:    resp.RequiredMinutes,
		TotalBookedMinutes: resp.TotalBookedMinutes,
		PeakSlots:          make([]SlotViewResponse, len(resp.PeakSlots)),
		AlternativeSlots:   make([]SlotViewResponse, len(resp.AlternativeSlots)),
	}
	for i, s := range resp.PeakSlots {
		out.PeakSlots[i] = SlotViewResponse{ID: s.ID, Start: s.Start.String(), End: s.End.String(), IsBooked: s.IsBooked}
	}
	for i, s := range resp.AlternativeSlots {
		out.AlternativeSlots[i] = SlotViewResponse{ID: s.ID, Start: s.Start.String(), End: s.End.String(), IsBooked: s.IsBooked}
	}
	return out
}
