package create_time_slots

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// SlotRange диапазон времени в запросе ("HH:MM")
type SlotRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Request модель запроса на прямое создание слотов
// Слоты создаются вне дневной доступности (DailyAvailabilityID = nil)
// и помечаются создателем.
type Request struct {
	TrainerID        int64       // ID тренера, которому создаются слоты
	CreatedBy        int64       // ID создателя (админ или сам тренер)
	Date             time.Time   // Дата (без времени)
	PeakSlots        []SlotRange // Пиковые диапазоны
	AlternativeSlots []SlotRange // Альтернативные диапазоны
}

// SlotView представление созданного слота в ответе
type SlotView struct {
	ID              int64
	Start           types.TimeString
	End             types.TimeString
	SlotType        string
	DurationMinutes int
}

// Response модель ответа с созданными слотами
type Response struct {
	TrainerID int64
	Date      time.Time
	CreatedBy int64
	Slots     []SlotView
}
