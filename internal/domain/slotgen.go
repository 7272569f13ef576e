package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSlotRange is returned by GenerateTimeSlots when a range has
// zero or negative duration (end <= start).
var ErrInvalidSlotRange = errors.New("domain: invalid slot range")

// GenerateTimeSlots converts raw peak/alternative ranges for a calendar
// date into discrete TimeSlot records with computed durations.
//
// Pure transformation: slots are returned with IsBooked=false and no
// ids; persistence is the caller's responsibility.
func GenerateTimeSlots(trainerID int64, date time.Time, peakRanges, alternativeRanges []TimeRange) ([]*TimeSlot, error) {
	slots := make([]*TimeSlot, 0, len(peakRanges)+len(alternativeRanges))

	for _, r := range peakRanges {
		slot, err := buildSlot(trainerID, date, r, SlotTypePeak)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	for _, r := range alternativeRanges {
		slot, err := buildSlot(trainerID, date, r, SlotTypeAlternative)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func buildSlot(trainerID int64, date time.Time, r TimeRange, slotType SlotType) (*TimeSlot, error) {
	if err := r.Start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
	}
	if err := r.End.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
	}

	startMin, err := r.Start.TotalMinutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
	}
	endMin, err := r.End.TotalMinutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
	}

	duration := endMin - startMin
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %s-%s has non-positive duration", ErrInvalidSlotRange, r.Start, r.End)
	}

	return &TimeSlot{
		TrainerID:       trainerID,
		Date:            date,
		StartTime:       r.Start,
		EndTime:         r.End,
		SlotType:        slotType,
		DurationMinutes: duration,
		IsBooked:        false,
	}, nil
}

// SumDurations returns the total duration in minutes over a set of slots
func SumDurations(slots []*TimeSlot) int {
	total := 0
	for _, s := range slots {
		total += s.DurationMinutes
	}
	return total
}
