package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/availability"
)

type fakeAvailabilityRepo struct {
	day    *domain.DailyAvailability
	dayErr error
	week   *domain.WeeklyAvailability
}

func (f *fakeAvailabilityRepo) FindDailyByTrainerAndDate(context.Context, int64, time.Time) (*domain.DailyAvailability, error) {
	return f.day, f.dayErr
}

func (f *fakeAvailabilityRepo) GetWeekByID(context.Context, int64) (*domain.WeeklyAvailability, error) {
	return f.week, nil
}

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeSlotRepo) ListByDailyAvailability(context.Context, int64) ([]*domain.TimeSlot, error) {
	return f.slots, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByTrainerAndDate_SplitsSlotsByType(t *testing.T) {
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC) // пятница
	ar := &fakeAvailabilityRepo{
		day:  &domain.DailyAvailability{ID: 42, TrainerID: 7, WeekID: 1, Date: date, IsAvailable: true, TotalDayMinutes: 120},
		week: &domain.WeeklyAvailability{ID: 1, RequiredMinutes: 2400, TotalBookedMinutes: 300},
	}
	sr := &fakeSlotRepo{
		slots: []*domain.TimeSlot{
			{ID: 1, StartTime: "09:00", EndTime: "10:00", SlotType: domain.SlotTypePeak},
			{ID: 2, StartTime: "13:00", EndTime: "14:00", SlotType: domain.SlotTypeAlternative},
			{ID: 3, StartTime: "18:00", EndTime: "19:00", SlotType: domain.SlotTypePeak},
		},
	}
	svc := NewService(ar, sr, nopLogger{})

	view, err := svc.GetByTrainerAndDate(context.Background(), 7, date)
	require.NoError(t, err)

	assert.True(t, view.IsAvailable)
	assert.Equal(t, "Friday", view.DayOfWeek)
	assert.Equal(t, 2400, view.RequiredMinutes)
	assert.Equal(t, 300, view.TotalBookedMinutes)

	require.Len(t, view.PeakSlots, 2)
	assert.Equal(t, "09:00", view.PeakSlots[0].Start)
	assert.Equal(t, "10:00", view.PeakSlots[0].End)
	require.Len(t, view.AlternativeSlots, 1)
	assert.Equal(t, "13:00", view.AlternativeSlots[0].Start)
}

func TestGetByTrainerAndDate_LeaveDayHasEmptySlots(t *testing.T) {
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	ar := &fakeAvailabilityRepo{
		day:  &domain.DailyAvailability{ID: 42, TrainerID: 7, WeekID: 1, Date: date, IsAvailable: false},
		week: &domain.WeeklyAvailability{ID: 1, RequiredMinutes: 2400},
	}
	svc := NewService(ar, &fakeSlotRepo{}, nopLogger{})

	view, err := svc.GetByTrainerAndDate(context.Background(), 7, date)
	require.NoError(t, err)

	assert.False(t, view.IsAvailable)
	// Пустые списки, не nil - сериализуются как []
	assert.NotNil(t, view.PeakSlots)
	assert.Empty(t, view.PeakSlots)
	assert.NotNil(t, view.AlternativeSlots)
	assert.Empty(t, view.AlternativeSlots)
}

func TestGetByTrainerAndDate_NotFound(t *testing.T) {
	ar := &fakeAvailabilityRepo{dayErr: availabilityRepo.ErrDayNotFound}
	svc := NewService(ar, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.GetByTrainerAndDate(context.Background(), 7, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}
