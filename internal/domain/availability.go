package domain

import "time"

// WeeklyAvailability is the per-trainer record for one ISO week
// (Monday 00:00:00.000 through Sunday 23:59:59.999).
//
// TotalBookedMinutes equals the sum of TotalDayMinutes over all
// DailyAvailability rows referencing this week; it is maintained
// transactionally whenever a day's slots change.
type WeeklyAvailability struct {
	ID                 int64
	TrainerID          int64
	WeekStartDate      time.Time
	WeekEndDate        time.Time
	RequiredMinutes    int
	TotalBookedMinutes int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DailyAvailability is the per-trainer record for one calendar date.
// IsAvailable=false represents a leave day and forces TotalDayMinutes=0
// and zero slots.
type DailyAvailability struct {
	ID              int64
	TrainerID       int64
	WeekID          int64
	Date            time.Time
	IsAvailable     bool
	TotalDayMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DayOfWeek returns the display name of the day ("Monday", ...).
// Derived, never stored.
func (d *DailyAvailability) DayOfWeek() string {
	return d.Date.Weekday().String()
}

// IsLeaveDay returns true if the trainer declared this date unavailable
func (d *DailyAvailability) IsLeaveDay() bool {
	return !d.IsAvailable
}
