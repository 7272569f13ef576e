package create_time_slots

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	createTimeSlots "github.com/m04kA/SMC-TrainerService/internal/usecase/create_time_slots"
	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// SlotRangeRequest диапазон времени в HTTP запросе
type SlotRangeRequest struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "10:00"
}

// CreateTimeSlotsRequest HTTP request model
type CreateTimeSlotsRequest struct {
	Date             string             `json:"date"` // "2026-07-10"
	PeakSlots        []SlotRangeRequest `json:"peakSlots,omitempty"`
	AlternativeSlots []SlotRangeRequest `json:"alternativeSlots,omitempty"`
}

// SlotResponse представление созданного слота
type SlotResponse struct {
	ID              int64  `json:"id"`
	Start           string `json:"start"`
	End             string `json:"end"`
	SlotType        string `json:"slotType"`
	DurationMinutes int    `json:"durationMinutes"`
}

// CreateTimeSlotsResponse HTTP response model
type CreateTimeSlotsResponse struct {
	TrainerID int64          `json:"trainerId"`
	Date      string         `json:"date"`
	CreatedBy int64          `json:"createdBy"`
	Slots     []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTimeSlotsRequest) ToUseCaseRequest(trainerID, createdBy int64) (*createTimeSlots.Request, error) {
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

	return &createTimeSlots.Request{
		TrainerID:        trainerID,
		CreatedBy:        createdBy,
		Date:             date,
		PeakSlots:        peak,
		AlternativeSlots: alternative,
	}, nil
}

func toSlotRanges(ranges []SlotRangeRequest) ([]createTimeSlots.SlotRange, error) {
	result := make([]createTimeSlots.SlotRange, len(ranges))
	for i, r := range ranges {
		start, err := types.NewTimeStringFromString(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(r.End)
		if err != nil {
			return nil, err
		}
		result[i] = createTimeSlots.SlotRange{Start: start, End: end}
	}
	return result, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTimeSlots.Response) *CreateTimeSlotsResponse {
	out := &CreateTimeSlotsResponse{
		TrainerID: resp.TrainerID,
		Date:      resp.Date.Format(domain.DateFormat),
		CreatedBy: resp.CreatedBy,
		Slots:     make([]SlotResponse, len(resp.Slots)),
	}
	for i, s := range resp.Slots {
		out.Slots[i] = SlotResponse{
			ID:              s.ID,
			Start:           s.Start.String(),
			End:             s.End.String(),
			SlotType:        s.SlotType,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return out
}
