package set_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

type fakeAvailabilityRepo struct {
	week        *domain.WeeklyAvailability
	existingDay *domain.DailyAvailability
	leaveCount  int
	weekTotal   int

	upsertedDay *domain.DailyAvailability
	recomputed  bool
}

func (f *fakeAvailabilityRepo) FindOrCreateWeek(_ context.Context, trainerID int64, weekStart, weekEnd time.Time, requiredMinutes int) (*domain.WeeklyAvailability, error) {
	if f.week == nil {
		f.week = &domain.WeeklyAvailability{
			ID:              1,
			TrainerID:       trainerID,
			WeekStartDate:   weekStart,
			WeekEndDate:     weekEnd,
			RequiredMinutes: requiredMinutes,
		}
	}
	return f.week, nil
}

func (f *fakeAvailabilityRepo) FindDailyByTrainerAndDate(context.Context, int64, time.Time) (*domain.DailyAvailability, error) {
	if f.existingDay == nil {
		return nil, availabilityRepo.ErrDayNotFound
	}
	return f.existingDay, nil
}

func (f *fakeAvailabilityRepo) UpsertDaily(_ context.Context, day *domain.DailyAvailability) (*domain.DailyAvailability, error) {
	stored := *day
	if f.existingDay != nil {
		stored.ID = f.existingDay.ID
	} else {
		stored.ID = 10
	}
	f.upsertedDay = &stored
	return &stored, nil
}

func (f *fakeAvailabilityRepo) CountLeaveDays(context.Context, int64, time.Time, time.Time) (int, error) {
	return f.leaveCount, nil
}

func (f *fakeAvailabilityRepo) RecomputeWeekBookedMinutes(context.Context, int64) (int, error) {
	f.recomputed = true
	return f.weekTotal, nil
}

type fakeSlotRepo struct {
	bookedCount int

	deletedDailyID int64
	created        []*domain.TimeSlot
}

func (f *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error) {
	for i, s := range slots {
		s.ID = int64(100 + i)
	}
	f.created = slots
	return slots, nil
}

func (f *fakeSlotRepo) CountBookedByDailyAvailability(context.Context, int64) (int, error) {
	return f.bookedCount, nil
}

func (f *fakeSlotRepo) DeleteByDailyAvailability(_ context.Context, dailyID int64) error {
	f.deletedDailyID = dailyID
	return nil
}

type fakeIdentityClient struct {
	user *identityservice.User
	err  error
}

func (f *fakeIdentityClient) GetUserWithGracefulDegradation(context.Context, int64) (*identityservice.User, error) {
	return f.user, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func trainerUser() *identityservice.User {
	return &identityservice.User{ID: 7, Role: identityservice.RoleTrainer, IsActive: true}
}

func newUseCase(ar *fakeAvailabilityRepo, sr *fakeSlotRepo, ic *fakeIdentityClient) *UseCase {
	return NewUseCase(ar, sr, ic, fakeTxManager{}, 2400, nopLogger{})
}

func TestExecute_GeneratesSlotsAndRecomputesWeek(t *testing.T) {
	ar := &fakeAvailabilityRepo{weekTotal: 150}
	sr := &fakeSlotRepo{}
	uc := newUseCase(ar, sr, &fakeIdentityClient{user: trainerUser()})

	resp, err := uc.Execute(context.Background(), &Request{
		TrainerID:        7,
		Date:             time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable:      true,
		PeakSlots:        []SlotRange{{Start: "09:00", End: "10:00"}},
		AlternativeSlots: []SlotRange{{Start: "13:00", End: "14:30"}},
	})
	require.NoError(t, err)

	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 150, resp.TotalDayMinutes)
	assert.Equal(t, 2400, resp.RequiredMinutes)
	assert.Equal(t, 150, resp.TotalBookedMinutes)
	require.Len(t, resp.PeakSlots, 1)
	require.Len(t, resp.AlternativeSlots, 1)

	assert.True(t, ar.recomputed)
	require.NotNil(t, ar.upsertedDay)
	assert.Equal(t, 150, ar.upsertedDay.TotalDayMinutes)
	require.Len(t, sr.created, 2)
	for _, s := range sr.created {
		require.NotNil(t, s.DailyAvailabilityID)
		assert.Equal(t, ar.upsertedDay.ID, *s.DailyAvailabilityID)
	}
}

func TestExecute_ReplacesExistingDaySlots(t *testing.T) {
	ar := &fakeAvailabilityRepo{
		existingDay: &domain.DailyAvailability{ID: 42, TrainerID: 7, WeekID: 1, IsAvailable: true, TotalDayMinutes: 60},
	}
	sr := &fakeSlotRepo{}
	uc := newUseCase(ar, sr, &fakeIdentityClient{user: trainerUser()})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: true,
		PeakSlots:   []SlotRange{{Start: "09:00", End: "10:00"}},
	})
	require.NoError(t, err)

	// Старые слоты дня снесены перед генерацией новых
	assert.Equal(t, int64(42), sr.deletedDailyID)
}

func TestExecute_RejectsWhenDayHasBookedSlots(t *testing.T) {
	ar := &fakeAvailabilityRepo{
		existingDay: &domain.DailyAvailability{ID: 42, TrainerID: 7, WeekID: 1, IsAvailable: true},
	}
	sr := &fakeSlotRepo{bookedCount: 1}
	uc := newUseCase(ar, sr, &fakeIdentityClient{user: trainerUser()})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: true,
		PeakSlots:   []SlotRange{{Start: "09:00", End: "10:00"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDayHasBookedSlots)
	assert.Zero(t, sr.deletedDailyID)
	assert.Nil(t, ar.upsertedDay)
}

func TestExecute_LeaveDayPurgesSlots(t *testing.T) {
	ar := &fakeAvailabilityRepo{
		existingDay: &domain.DailyAvailability{ID: 42, TrainerID: 7, WeekID: 1, IsAvailable: true, TotalDayMinutes: 120},
	}
	sr := &fakeSlotRepo{}
	uc := newUseCase(ar, sr, &fakeIdentityClient{user: trainerUser()})

	resp, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: false,
	})
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.Zero(t, resp.TotalDayMinutes)
	assert.Empty(t, resp.PeakSlots)
	assert.Empty(t, resp.AlternativeSlots)
	assert.Equal(t, int64(42), sr.deletedDailyID)
	assert.Empty(t, sr.created)
}

func TestExecute_LeaveLimitIsHardStop(t *testing.T) {
	ar := &fakeAvailabilityRepo{leaveCount: 1}
	sr := &fakeSlotRepo{}
	uc := newUseCase(ar, sr, &fakeIdentityClient{user: trainerUser()})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: false,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLeaveLimitExceeded)
	// Ничего не записано
	assert.Nil(t, ar.upsertedDay)
	assert.False(t, ar.recomputed)
}

func TestExecute_ResettingExistingLeaveDayDoesNotConsumeLimit(t *testing.T) {
	ar := &fakeAvailabilityRepo{
		leaveCount:  1,
		existingDay: &domain.DailyAvailability{ID: 42, TrainerID: 7, WeekID: 1, IsAvailable: false},
	}
	sr := &fakeSlotRepo{}
	uc := newUseCase(ar, sr, &fakeIdentityClient{user: trainerUser()})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: false,
	})

	require.NoError(t, err)
}

func TestExecute_RejectsLeaveDayWithRanges(t *testing.T) {
	uc := newUseCase(&fakeAvailabilityRepo{}, &fakeSlotRepo{}, &fakeIdentityClient{user: trainerUser()})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: false,
		PeakSlots:   []SlotRange{{Start: "09:00", End: "10:00"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidSlotRange(t *testing.T) {
	uc := newUseCase(&fakeAvailabilityRepo{}, &fakeSlotRepo{}, &fakeIdentityClient{user: trainerUser()})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: true,
		PeakSlots:   []SlotRange{{Start: "10:00", End: "09:00"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestExecute_RejectsNonTrainer(t *testing.T) {
	customer := &identityservice.User{ID: 7, Role: identityservice.RoleCustomer, IsActive: true}
	uc := newUseCase(&fakeAvailabilityRepo{}, &fakeSlotRepo{}, &fakeIdentityClient{user: customer})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: true,
		PeakSlots:   []SlotRange{{Start: "09:00", End: "10:00"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotTrainer)
}

func TestExecute_IdentityOutageDoesNotBlock(t *testing.T) {
	ic := &fakeIdentityClient{err: identityservice.ErrServiceDegraded}
	uc := newUseCase(&fakeAvailabilityRepo{}, &fakeSlotRepo{}, ic)

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID:   7,
		Date:        time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		IsAvailable: true,
		PeakSlots:   []SlotRange{{Start: "09:00", End: "10:00"}},
	})

	require.NoError(t, err)
}
