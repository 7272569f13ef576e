package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/timeslot"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	cancelledID int64
	cancelledAt time.Time
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, cancelledAt time.Time) error {
	f.cancelledID = id
	f.cancelledAt = cancelledAt
	return nil
}

type fakeSlotRepo struct {
	markFreeErr error

	freedID int64
}

func (f *fakeSlotRepo) MarkFree(_ context.Context, id int64) error {
	f.freedID = id
	return f.markFreeErr
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:                 1001,
		CustomerID:         3,
		TrainerID:          7,
		TimeSlotID:         55,
		OriginalTimeSlotID: 55,
		Accolades:          []int64{},
	}
}

func newUseCase(br *fakeBookingRepo, sr *fakeSlotRepo, now time.Time) *UseCase {
	uc := NewUseCase(br, sr, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_CancelsBookingAndFreesSlot(t *testing.T) {
	now := time.Date(2026, time.July, 9, 18, 0, 0, 0, time.UTC)
	br := &fakeBookingRepo{booking: activeBooking()}
	sr := &fakeSlotRepo{}
	uc := newUseCase(br, sr, now)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1001})
	require.NoError(t, err)

	assert.True(t, resp.IsCancelled)
	assert.Equal(t, now, resp.CancelledAt)
	assert.Equal(t, int64(55), resp.TimeSlotID)

	assert.Equal(t, int64(1001), br.cancelledID)
	assert.Equal(t, now, br.cancelledAt)
	assert.Equal(t, int64(55), sr.freedID)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	b := activeBooking()
	b.IsCancelled = true
	br := &fakeBookingRepo{booking: b}
	sr := &fakeSlotRepo{}
	uc := newUseCase(br, sr, time.Now())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1001})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Zero(t, br.cancelledID)
	assert.Zero(t, sr.freedID)
}

func TestExecute_BookingNotFound(t *testing.T) {
	br := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newUseCase(br, &fakeSlotRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1001})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_SlotAlreadyFreeIsTolerated(t *testing.T) {
	// Рассинхронизация слота не должна валить отмену
	br := &fakeBookingRepo{booking: activeBooking()}
	sr := &fakeSlotRepo{markFreeErr: timeslotRepo.ErrSlotNotBooked}
	uc := newUseCase(br, sr, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1001})

	require.NoError(t, err)
	assert.True(t, resp.IsCancelled)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{booking: activeBooking()}, &fakeSlotRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
