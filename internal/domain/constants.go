package domain

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)

// Pagination defaults for slot and booking listings
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// MaxLeaveDaysPerMonth caps trainer-declared unavailable days.
// One leave day per trainer per calendar month.
const MaxLeaveDaysPerMonth = 1
