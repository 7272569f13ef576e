package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error
	list    []*domain.Booking
	total   int64

	attendanceID    int64
	attendanceValue bool
	accoladesID     int64
	accoladesValue  []int64
	gotPage         int
	gotPageSize     int
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) ListByTrainer(_ context.Context, _ int64, page, pageSize int) ([]*domain.Booking, int64, error) {
	f.gotPage = page
	f.gotPageSize = pageSize
	return f.list, f.total, nil
}

func (f *fakeBookingRepo) SetAttendance(_ context.Context, id int64, attended bool) error {
	f.attendanceID = id
	f.attendanceValue = attended
	return nil
}

func (f *fakeBookingRepo) UpdateAccolades(_ context.Context, id int64, accolades []int64) error {
	f.accoladesID = id
	f.accoladesValue = accolades
	return nil
}

type fakeSlotRepo struct {
	slot *domain.TimeSlot
	err  error
}

func (f *fakeSlotRepo) GetByID(context.Context, int64) (*domain.TimeSlot, error) {
	return f.slot, f.err
}

type fakeIdentityClient struct {
	users map[int64]*identityservice.User
	err   error
}

func (f *fakeIdentityClient) GetUserWithGracefulDegradation(_ context.Context, userID int64) (*identityservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[userID], nil
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
		CreatedAt:          time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sessionSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:              55,
		TrainerID:       7,
		Date:            time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		EndTime:         "10:00",
		SlotType:        domain.SlotTypePeak,
		DurationMinutes: 60,
		IsBooked:        true,
	}
}

func identityWithUsers() *fakeIdentityClient {
	return &fakeIdentityClient{
		users: map[int64]*identityservice.User{
			3: {ID: 3, FirstName: "Anna", Role: identityservice.RoleCustomer},
			7: {ID: 7, FirstName: "Pavel", Role: identityservice.RoleTrainer},
		},
	}
}

func TestGetByID_EnrichesWithProfilesAndSlot(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{booking: activeBooking()},
		&fakeSlotRepo{slot: sessionSlot()},
		identityWithUsers(),
		nopLogger{},
	)

	resp, err := svc.GetByID(context.Background(), 1001)
	require.NoError(t, err)

	assert.Equal(t, int64(1001), resp.ID)
	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Anna", resp.Customer.FirstName)
	require.NotNil(t, resp.Trainer)
	assert.Equal(t, "Pavel", resp.Trainer.FirstName)
	require.NotNil(t, resp.TimeSlot)
	assert.Equal(t, "2026-07-10", resp.TimeSlot.Date)
	assert.Equal(t, "09:00", resp.TimeSlot.StartTime)
}

func TestGetByID_IdentityOutageDropsProfilesOnly(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{booking: activeBooking()},
		&fakeSlotRepo{slot: sessionSlot()},
		&fakeIdentityClient{err: identityservice.ErrServiceDegraded},
		nopLogger{},
	)

	resp, err := svc.GetByID(context.Background(), 1001)
	require.NoError(t, err)

	// Бронирование отдаётся без профилей, слот на месте
	assert.Nil(t, resp.Customer)
	assert.Nil(t, resp.Trainer)
	require.NotNil(t, resp.TimeSlot)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound},
		&fakeSlotRepo{slot: sessionSlot()},
		identityWithUsers(),
		nopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 1001)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByTrainer_NormalizesPagination(t *testing.T) {
	br := &fakeBookingRepo{list: []*domain.Booking{activeBooking()}, total: 1}
	svc := NewService(br, &fakeSlotRepo{slot: sessionSlot()}, identityWithUsers(), nopLogger{})

	resp, err := svc.ListByTrainer(context.Background(), 7, 0, 500)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPage, br.gotPage)
	assert.Equal(t, domain.MaxPageSize, br.gotPageSize)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestMarkAttended(t *testing.T) {
	br := &fakeBookingRepo{booking: activeBooking()}
	svc := NewService(br, &fakeSlotRepo{slot: sessionSlot()}, identityWithUsers(), nopLogger{})

	resp, err := svc.MarkAttended(context.Background(), 1001, 7, true)
	require.NoError(t, err)

	assert.Equal(t, int64(1001), br.attendanceID)
	assert.True(t, br.attendanceValue)
	require.NotNil(t, resp.IsAttendedByTrainer)
	assert.True(t, *resp.IsAttendedByTrainer)
}

func TestMarkAttended_TrainerMismatch(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{booking: activeBooking()},
		&fakeSlotRepo{slot: sessionSlot()},
		identityWithUsers(),
		nopLogger{},
	)

	_, err := svc.MarkAttended(context.Background(), 1001, 99, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTrainerMismatch)
}

func TestMarkAttended_CancelledBooking(t *testing.T) {
	b := activeBooking()
	b.IsCancelled = true
	svc := NewService(
		&fakeBookingRepo{booking: b},
		&fakeSlotRepo{slot: sessionSlot()},
		identityWithUsers(),
		nopLogger{},
	)

	_, err := svc.MarkAttended(context.Background(), 1001, 7, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestUpdateAccolades(t *testing.T) {
	br := &fakeBookingRepo{booking: activeBooking()}
	svc := NewService(br, &fakeSlotRepo{slot: sessionSlot()}, identityWithUsers(), nopLogger{})

	resp, err := svc.UpdateAccolades(context.Background(), 1001, 7, []int64{10, 20})
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20}, br.accoladesValue)
	assert.Equal(t, []int64{10, 20}, resp.Accolades)
}

func TestUpdateAccolades_NilBecomesEmptyList(t *testing.T) {
	br := &fakeBookingRepo{booking: activeBooking()}
	svc := NewService(br, &fakeSlotRepo{slot: sessionSlot()}, identityWithUsers(), nopLogger{})

	resp, err := svc.UpdateAccolades(context.Background(), 1001, 7, nil)
	require.NoError(t, err)

	require.NotNil(t, br.accoladesValue)
	assert.Empty(t, br.accoladesValue)
	require.NotNil(t, resp.Accolades)
	assert.Empty(t, resp.Accolades)
}
