package models

import (
	"github.com/m04kA/SMC-TrainerService/internal/domain"
)

// SlotRange пара "начало-конец" в формате HH:MM
type SlotRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DailyAvailabilityView представление дневной доступности тренера
// Слоты разложены по типам; недельные показатели берутся из владеющей
// недельной записи.
type DailyAvailabilityView struct {
	RequiredMinutes    int         `json:"requiredMinutes"`
	TotalBookedMinutes int         `json:"totalBookedMinutes"`
	IsAvailable        bool        `json:"isAvailable"`
	DayOfWeek          string      `json:"dayOfWeek"`
	PeakSlots          []SlotRange `json:"peakSlots"`
	AlternativeSlots   []SlotRange `json:"alternativeSlots"`
}

// FromDomain собирает представление из доменных моделей
func FromDomain(day *domain.DailyAvailability, week *domain.WeeklyAvailability, slots []*domain.TimeSlot) *DailyAvailabilityView {
	view := &DailyAvailabilityView{
		IsAvailable:      day.IsAvailable,
		DayOfWeek:        day.DayOfWeek(),
		PeakSlots:        []SlotRange{},
		AlternativeSlots: []SlotRange{},
	}

	if week != nil {
		view.RequiredMinutes = week.RequiredMinutes
		view.TotalBookedMinutes = week.TotalBookedMinutes
	}

	for _, slot := range slots {
		r := SlotRange{Start: slot.StartTime.String(), End: slot.EndTime.String()}
		switch slot.SlotType {
		case domain.SlotTypePeak:
			view.PeakSlots = append(view.PeakSlots, r)
		case domain.SlotTypeAlternative:
			view.AlternativeSlots = append(view.AlternativeSlots, r)
		}
	}

	return view
}
