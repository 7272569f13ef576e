package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainerService/internal/domain"
	"github.com/m04kA/SMC-TrainerService/internal/service/slots/models"
)

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
	total int64

	gotFilter   domain.TimeSlotFilter
	gotPage     int
	gotPageSize int
}

func (f *fakeSlotRepo) List(_ context.Context, filter domain.TimeSlotFilter, page, pageSize int) ([]*domain.TimeSlot, int64, error) {
	f.gotFilter = filter
	f.gotPage = page
	f.gotPageSize = pageSize
	return f.slots, f.total, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListTrainerSlots(t *testing.T) {
	creator := int64(99)
	repo := &fakeSlotRepo{
		slots: []*domain.TimeSlot{
			{
				ID:              1,
				TrainerID:       7,
				Date:            time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
				StartTime:       "09:00",
				EndTime:         "10:00",
				SlotType:        domain.SlotTypePeak,
				DurationMinutes: 60,
				CreatedBy:       &creator,
			},
		},
		total: 21,
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListTrainerSlots(context.Background(), &models.ListSlotsRequest{
		TrainerID: 7,
		Page:      2,
		PageSize:  10,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2026-07-10", resp.Slots[0].Date)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "PEAK", resp.Slots[0].SlotType)
	require.NotNil(t, resp.Slots[0].CreatedBy)
	assert.Equal(t, creator, *resp.Slots[0].CreatedBy)

	assert.Equal(t, int64(21), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.TotalPages)

	assert.Equal(t, int64(7), repo.gotFilter.TrainerID)
	assert.Equal(t, 2, repo.gotPage)
}

func TestListTrainerSlots_NormalizesPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "zero values get defaults", page: 0, pageSize: 0, wantPage: domain.DefaultPage, wantPageSize: domain.DefaultPageSize},
		{name: "negative values get defaults", page: -1, pageSize: -5, wantPage: domain.DefaultPage, wantPageSize: domain.DefaultPageSize},
		{name: "oversized page size is capped", page: 1, pageSize: 500, wantPage: 1, wantPageSize: domain.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSlotRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.ListTrainerSlots(context.Background(), &models.ListSlotsRequest{
				TrainerID: 7,
				Page:      tt.page,
				PageSize:  tt.pageSize,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, repo.gotPage)
			assert.Equal(t, tt.wantPageSize, repo.gotPageSize)
		})
	}
}

func TestListTrainerSlots_PassesFilters(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewService(repo, nopLogger{})

	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	createdBy := int64(99)

	_, err := svc.ListTrainerSlots(context.Background(), &models.ListSlotsRequest{
		TrainerID: 7,
		Date:      &date,
		CreatedBy: &createdBy,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.Date)
	assert.Equal(t, date, *repo.gotFilter.Date)
	require.NotNil(t, repo.gotFilter.CreatedBy)
	assert.Equal(t, createdBy, *repo.gotFilter.CreatedBy)
}

func TestListTrainerSlots_InvalidTrainerID(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, nopLogger{})

	_, err := svc.ListTrainerSlots(context.Background(), &models.ListSlotsRequest{TrainerID: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
