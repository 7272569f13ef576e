package domain

import "time"

// Booking represents a customer's claim on a trainer time slot.
//
// Lifecycle: created only by a successful slot-booking transaction;
// TimeSlotID changes only via reschedule; IsCancelled=true is terminal.
// While IsCancelled=false the referenced slot has IsBooked=true and no
// other live booking references it.
type Booking struct {
	ID         int64
	CustomerID int64
	TrainerID  int64

	// TimeSlotID is the currently held slot.
	TimeSlotID int64

	// OriginalTimeSlotID is the slot the booking was first created
	// against. Immutable once set; preserved across reschedules.
	OriginalTimeSlotID int64

	IsCancelled bool

	// IsAttendedByTrainer is nil until the trainer marks attendance.
	IsAttendedByTrainer *bool

	RescheduledCount  int
	LastRescheduledAt *time.Time
	CancelledAt       *time.Time

	// Accolades is an unordered list of opaque accolade ids.
	Accolades []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return !b.IsCancelled
}

// CanBeRescheduled returns true if the booking may move to another slot
func (b *Booking) CanBeRescheduled() bool {
	return !b.IsCancelled
}

// WasAttended returns true if the trainer marked the session attended
func (b *Booking) WasAttended() bool {
	return b.IsAttendedByTrainer != nil && *b.IsAttendedByTrainer
}
