package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/availability"
)

type fakeBookingRepo struct {
	attendedByRange map[string]int
	slotInfos       []*domain.BookingSlotInfo
}

func (f *fakeBookingRepo) CountAttendedInRange(_ context.Context, _ int64, from, _ time.Time) (int, error) {
	return f.attendedByRange[from.Format("2006-01-02")], nil
}

func (f *fakeBookingRepo) ListSlotInfoByTrainer(context.Context, int64) ([]*domain.BookingSlotInfo, error) {
	return f.slotInfos, nil
}

type fakeSlotRepo struct {
	bookedByRange map[string]int
}

func (f *fakeSlotRepo) CountBookedInRange(_ context.Context, _ int64, from, _ time.Time) (int, error) {
	return f.bookedByRange[from.Format("2006-01-02")], nil
}

type fakeAvailabilityRepo struct {
	week *domain.WeeklyAvailability
	err  error
}

func (f *fakeAvailabilityRepo) FindWeekByTrainerAndStart(context.Context, int64, time.Time) (*domain.WeeklyAvailability, error) {
	return f.week, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDashboard_Summaries(t *testing.T) {
	// Среда 8 июля 2026: неделя с 6 июля, месяц с 1 июля, год с 1 января
	now := time.Date(2026, time.July, 8, 12, 0, 0, 0, time.UTC)

	br := &fakeBookingRepo{
		attendedByRange: map[string]int{
			"2026-07-06": 3,  // неделя
			"2026-07-01": 8,  // месяц
			"2026-01-01": 40, // год
		},
	}
	sr := &fakeSlotRepo{
		bookedByRange: map[string]int{
			"2026-07-06": 4,
			"2026-07-01": 10,
			"2026-01-01": 50,
		},
	}
	ar := &fakeAvailabilityRepo{week: &domain.WeeklyAvailability{TotalBookedMinutes: 90}}

	svc := NewService(br, sr, ar, fixedTimeProvider{now: now}, nopLogger{})

	resp, err := svc.Dashboard(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Weekly.TotalBookedSlots)
	assert.Equal(t, 3, resp.Weekly.AttendedSlots)
	assert.InDelta(t, 75.0, resp.Weekly.AttendancePercentage, 0.001)

	assert.Equal(t, 10, resp.Monthly.TotalBookedSlots)
	assert.InDelta(t, 80.0, resp.Monthly.AttendancePercentage, 0.001)

	assert.Equal(t, 50, resp.Yearly.TotalBookedSlots)
	assert.InDelta(t, 80.0, resp.Yearly.AttendancePercentage, 0.001)

	assert.InDelta(t, 1.5, resp.TotalWorkingHours, 0.001)
}

func TestDashboard_ZeroBookedSlotsGivesZeroPercentage(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrWeekNotFound},
		fixedTimeProvider{now: time.Date(2026, time.July, 8, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := svc.Dashboard(context.Background(), 7)
	require.NoError(t, err)

	assert.Zero(t, resp.Weekly.TotalBookedSlots)
	assert.Zero(t, resp.Weekly.AttendancePercentage)
	// Отсутствие недельной записи - ноль часов, не ошибка
	assert.Zero(t, resp.TotalWorkingHours)
}

func TestDashboard_PopularSlots(t *testing.T) {
	july := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	august := time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)

	br := &fakeBookingRepo{
		slotInfos: []*domain.BookingSlotInfo{
			{SlotDate: july, StartTime: "09:00", EndTime: "10:00"},
			{SlotDate: july, StartTime: "09:00", EndTime: "10:00"},
			{SlotDate: july, StartTime: "18:00", EndTime: "19:00"},
			{SlotDate: august, StartTime: "18:00", EndTime: "19:00"},
		},
	}
	svc := NewService(
		br,
		&fakeSlotRepo{},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrWeekNotFound},
		fixedTimeProvider{now: time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := svc.Dashboard(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, resp.PopularSlots, 2)
	// Месяцы по возрастанию
	assert.Equal(t, "2026-07", resp.PopularSlots[0].Month)
	assert.Equal(t, "09:00 - 10:00", resp.PopularSlots[0].SlotLabel)
	assert.Equal(t, 2, resp.PopularSlots[0].BookingCount)
	assert.Equal(t, "2026-08", resp.PopularSlots[1].Month)
	assert.Equal(t, "18:00 - 19:00", resp.PopularSlots[1].SlotLabel)
	assert.Equal(t, 1, resp.PopularSlots[1].BookingCount)
}

func TestDashboard_PopularSlotsTieBreak(t *testing.T) {
	july := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	br := &fakeBookingRepo{
		slotInfos: []*domain.BookingSlotInfo{
			{SlotDate: july, StartTime: "18:00", EndTime: "19:00"},
			{SlotDate: july, StartTime: "09:00", EndTime: "10:00"},
		},
	}
	svc := NewService(
		br,
		&fakeSlotRepo{},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrWeekNotFound},
		fixedTimeProvider{now: time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := svc.Dashboard(context.Background(), 7)
	require.NoError(t, err)

	// При равных счётчиках побеждает лексикографически меньшая метка
	require.Len(t, resp.PopularSlots, 1)
	assert.Equal(t, "09:00 - 10:00", resp.PopularSlots[0].SlotLabel)
	assert.Equal(t, 1, resp.PopularSlots[0].BookingCount)
}

func TestDashboard_InvalidTrainerID(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeAvailabilityRepo{},
		fixedTimeProvider{now: time.Now()},
		nopLogger{},
	)

	_, err := svc.Dashboard(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
