package domain

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// SlotType represents the category of a trainer-offered time window.
// The category is informational and does not change booking mechanics.
type SlotType string

const (
	SlotTypePeak        SlotType = "PEAK"
	SlotTypeAlternative SlotType = "ALTERNATIVE"
)

// TimeRange is a raw start/end pair ("HH:MM") supplied by a trainer
// when declaring availability, before it is turned into a TimeSlot.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// TimeSlot is a bookable time window on a given date.
// A slot is bookable by at most one customer at a time; IsBooked is
// flipped only inside booking/cancel/reschedule transactions.
type TimeSlot struct {
	ID int64

	// DailyAvailabilityID is nil for slots created directly through the
	// admin scheduling flow (no owning daily-availability row).
	DailyAvailabilityID *int64

	TrainerID       int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	SlotType        SlotType
	DurationMinutes int
	IsBooked        bool

	// CreatedBy is set for admin-created slots only.
	CreatedBy *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree returns true if the slot can accept a new booking
func (s *TimeSlot) IsFree() bool {
	return !s.IsBooked
}

// BelongsTo returns true if the slot is owned by the given trainer
func (s *TimeSlot) BelongsTo(trainerID int64) bool {
	return s.TrainerID == trainerID
}

// HourRangeLabel returns a display label like "09:00 - 10:00" derived
// from the slot's start/end hours. Used for popular-slot statistics.
func (s *TimeSlot) HourRangeLabel() string {
	return s.StartTime.String() + " - " + s.EndTime.String()
}

// TimeSlotFilter describes the ledger queries used for slot listings
type TimeSlotFilter struct {
	TrainerID int64
	Date      *time.Time // nil = any date
	CreatedBy *int64     // nil = any creator; admin listing filter
}
