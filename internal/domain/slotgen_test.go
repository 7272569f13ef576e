package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateTimeSlots(t *testing.T) {
	day := date(2026, time.July, 10)

	slots, err := GenerateTimeSlots(7, day,
		[]TimeRange{{Start: "09:00", End: "10:00"}, {Start: "18:00", End: "19:30"}},
		[]TimeRange{{Start: "13:00", End: "14:00"}},
	)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, SlotTypePeak, slots[0].SlotType)
	assert.Equal(t, 60, slots[0].DurationMinutes)
	assert.Equal(t, SlotTypePeak, slots[1].SlotType)
	assert.Equal(t, 90, slots[1].DurationMinutes)
	assert.Equal(t, SlotTypeAlternative, slots[2].SlotType)
	assert.Equal(t, 60, slots[2].DurationMinutes)

	for _, s := range slots {
		assert.Equal(t, int64(7), s.TrainerID)
		assert.Equal(t, day, s.Date)
		assert.False(t, s.IsBooked)
		assert.Zero(t, s.ID)
	}
}

func TestGenerateTimeSlots_EmptyRanges(t *testing.T) {
	slots, err := GenerateTimeSlots(7, date(2026, time.July, 10), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_EndBeforeStart(t *testing.T) {
	_, err := GenerateTimeSlots(7, date(2026, time.July, 10),
		[]TimeRange{{Start: "10:00", End: "09:00"}}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestGenerateTimeSlots_ZeroDuration(t *testing.T) {
	_, err := GenerateTimeSlots(7, date(2026, time.July, 10),
		nil, []TimeRange{{Start: "10:00", End: "10:00"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestGenerateTimeSlots_InvalidFormat(t *testing.T) {
	_, err := GenerateTimeSlots(7, date(2026, time.July, 10),
		[]TimeRange{{Start: "9am", End: "10:00"}}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestSumDurations(t *testing.T) {
	slots, err := GenerateTimeSlots(7, date(2026, time.July, 10),
		[]TimeRange{{Start: "09:00", End: "10:00"}},
		[]TimeRange{{Start: "13:00", End: "14:30"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 150, SumDurations(slots))
	assert.Equal(t, 0, SumDurations(nil))
}

func TestHourRangeLabel(t *testing.T) {
	slot := &TimeSlot{StartTime: "09:00", EndTime: "10:00"}
	assert.Equal(t, "09:00 - 10:00", slot.HourRangeLabel())
}

func TestBookingStateHelpers(t *testing.T) {
	b := &Booking{}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeRescheduled())
	assert.False(t, b.WasAttended())

	attended := true
	b.IsAttendedByTrainer = &attended
	assert.True(t, b.WasAttended())

	b.IsCancelled = true
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeRescheduled())
}
