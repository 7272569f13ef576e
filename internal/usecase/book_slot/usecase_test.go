package book_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	timeslotRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	stored := *b
	stored.ID = 1001
	stored.CreatedAt = time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)
	f.created = &stored
	return &stored, nil
}

type fakeSlotRepo struct {
	slot          *domain.TimeSlot
	getErr        error
	markBookedErr error

	markedBookedID int64
}

func (f *fakeSlotRepo) GetByID(context.Context, int64) (*domain.TimeSlot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s := *f.slot
	return &s, nil
}

func (f *fakeSlotRepo) MarkBooked(_ context.Context, id int64) error {
	if f.markBookedErr != nil {
		return f.markBookedErr
	}
	f.markedBookedID = id
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

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func freeSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:              55,
		TrainerID:       7,
		Date:            time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		EndTime:         "10:00",
		SlotType:        domain.SlotTypePeak,
		DurationMinutes: 60,
	}
}

func customer() *identityservice.User {
	return &identityservice.User{ID: 3, Role: identityservice.RoleCustomer, IsActive: true}
}

func newUseCase(br *fakeBookingRepo, sr *fakeSlotRepo, ic *fakeIdentityClient) *UseCase {
	return NewUseCase(br, sr, ic, fakeTxManager{}, nopLogger{})
}

func TestExecute_BooksFreeSlot(t *testing.T) {
	br := &fakeBookingRepo{}
	sr := &fakeSlotRepo{slot: freeSlot()}
	uc := newUseCase(br, sr, &fakeIdentityClient{user: customer()})

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: 3, TrainerID: 7, TimeSlotID: 55})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, int64(3), resp.CustomerID)
	assert.Equal(t, int64(55), resp.TimeSlotID)
	assert.Equal(t, int64(55), resp.OriginalTimeSlotID)
	assert.Equal(t, int64(55), sr.markedBookedID)

	// Исходный слот фиксируется при создании
	require.NotNil(t, br.created)
	assert.Equal(t, br.created.TimeSlotID, br.created.OriginalTimeSlotID)
	assert.NotNil(t, br.created.Accolades)
	assert.Empty(t, br.created.Accolades)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	slot := freeSlot()
	slot.IsBooked = true
	sr := &fakeSlotRepo{slot: slot}
	uc := newUseCase(&fakeBookingRepo{}, sr, &fakeIdentityClient{user: customer()})

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 3, TrainerID: 7, TimeSlotID: 55})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Zero(t, sr.markedBookedID)
}

func TestExecute_LostRaceOnConditionalUpdate(t *testing.T) {
	// Слот выглядел свободным при чтении, но условный UPDATE проиграл гонку
	br := &fakeBookingRepo{}
	sr := &fakeSlotRepo{slot: freeSlot(), markBookedErr: timeslotRepo.ErrSlotAlreadyBooked}
	uc := newUseCase(br, sr, &fakeIdentityClient{user: customer()})

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 3, TrainerID: 7, TimeSlotID: 55})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Nil(t, br.created)
}

func TestExecute_TrainerMismatch(t *testing.T) {
	sr := &fakeSlotRepo{slot: freeSlot()}
	uc := newUseCase(&fakeBookingRepo{}, sr, &fakeIdentityClient{user: customer()})

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 3, TrainerID: 99, TimeSlotID: 55})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTrainerMismatch)
}

func TestExecute_SlotNotFound(t *testing.T) {
	sr := &fakeSlotRepo{getErr: timeslotRepo.ErrSlotNotFound}
	uc := newUseCase(&fakeBookingRepo{}, sr, &fakeIdentityClient{user: customer()})

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 3, TrainerID: 7, TimeSlotID: 55})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	ic := &fakeIdentityClient{err: identityservice.ErrUserNotFound}
	uc := newUseCase(&fakeBookingRepo{}, &fakeSlotRepo{slot: freeSlot()}, ic)

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 3, TrainerID: 7, TimeSlotID: 55})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_IdentityOutageDoesNotBlock(t *testing.T) {
	ic := &fakeIdentityClient{err: identityservice.ErrServiceDegraded}
	uc := newUseCase(&fakeBookingRepo{}, &fakeSlotRepo{slot: freeSlot()}, ic)

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 3, TrainerID: 7, TimeSlotID: 55})

	require.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeSlotRepo{slot: freeSlot()}, &fakeIdentityClient{user: customer()})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero customer", req: &Request{TrainerID: 7, TimeSlotID: 55}},
		{name: "zero trainer", req: &Request{CustomerID: 3, TimeSlotID: 55}},
		{name: "zero slot", req: &Request{CustomerID: 3, TrainerID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
