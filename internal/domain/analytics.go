package domain

import (
	"time"

	"github.com/m04kA/SMC-TrainerService/pkg/types"
)

// BookingSlotInfo is the projection of a booking joined with its current
// slot, used by the analytics rollups (popular-slot statistics).
type BookingSlotInfo struct {
	BookingID int64
	SlotDate  time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// MonthKey returns the "2006-01" grouping key of the slot's month
func (b *BookingSlotInfo) MonthKey() string {
	return b.SlotDate.Format("2006-01")
}

// HourRangeLabel returns the display label used for grouping within a month
func (b *BookingSlotInfo) HourRangeLabel() string {
	return b.StartTime.String() + " - " + b.EndTime.String()
}
