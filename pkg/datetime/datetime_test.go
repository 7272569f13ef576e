package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday",
			input:     day(2026, time.July, 8),
			wantStart: time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.July, 12, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "monday is its own week start",
			input:     day(2026, time.July, 6),
			wantStart: time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.July, 12, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "sunday belongs to the preceding monday",
			input:     day(2026, time.July, 12),
			wantStart: time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.July, 12, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "week spanning month boundary",
			input:     day(2026, time.August, 1), // суббота
			wantStart: time.Date(2026, time.July, 27, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 2, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.input)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "31-day month",
			input:     day(2026, time.July, 15),
			wantStart: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.July, 31, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "february non-leap",
			input:     day(2026, time.February, 10),
			wantStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.February, 28, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "february leap year",
			input:     day(2028, time.February, 10),
			wantStart: time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2028, time.February, 29, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.input)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(day(2026, time.May, 20))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.December, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestDayStartEnd(t *testing.T) {
	input := day(2026, time.July, 8)
	assert.Equal(t, time.Date(2026, time.July, 8, 0, 0, 0, 0, time.UTC), DayStart(input))
	assert.Equal(t, time.Date(2026, time.July, 8, 23, 59, 59, 999000000, time.UTC), DayEnd(input))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(day(2026, time.July, 8), DayStart(day(2026, time.July, 8))))
	assert.False(t, SameDay(day(2026, time.July, 8), day(2026, time.July, 9)))
}
