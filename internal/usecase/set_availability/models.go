package set_availability

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// SlotRange диапазон времени в запросе ("HH:MM")
type SlotRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Request модель запроса на установку дневной доступности
type Request struct {
	TrainerID        int64       // ID тренера
	Date             time.Time   // Дата (без времени)
	IsAvailable      bool        // false = день отпуска
	PeakSlots        []SlotRange // Пиковые диапазоны
	AlternativeSlots []SlotRange // Альтернативные диапазоны
}

// SlotView представление сгенерированного слота в ответе
type SlotView struct {
	ID       int64
	Start    types.TimeString
	End      types.TimeString
	IsBooked bool
}

// Response модель ответа с обновлённой доступностью дня
type Response struct {
	TrainerID          int64
	Date               time.Time
	DayOfWeek          string
	IsAvailable        bool
	TotalDayMinutes    int
	RequiredMinutes    int // Недельная норма
	TotalBookedMinutes int // Суммарные минуты недели после пересчёта
	PeakSlots          []SlotView
	AlternativeSlots   []SlotView
}
