package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/bawadev/dhaana/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type slotFixture struct {
	repo          *mocks.MockSlotRepo
	monasteryRepo *mocks.MockMonasteryRepo
	bookingRepo   *mocks.MockBookingRepo
	svc           *SlotService
}

func newSlotFixture(t *testing.T) *slotFixture {
	f := &slotFixture{
		repo:          mocks.NewMockSlotRepo(t),
		monasteryRepo: mocks.NewMockMonasteryRepo(t),
		bookingRepo:   mocks.NewMockBookingRepo(t),
	}
	f.svc = NewSlotService(f.repo, f.monasteryRepo, f.bookingRepo, newTestLogger(t))
	return f
}

func TestSlotService_Create_ByMonasteryAdmin(t *testing.T) {
	f := newSlotFixture(t)

	f.monasteryRepo.EXPECT().GetByID(mock.Anything, "m1").Return(testMonastery(), nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateSlotInput{
		MonasteryID: "m1",
		Date:        time.Now().AddDate(0, 0, 7),
		TimeOfDay:   domain.TimeOfDayBreakfast,
		Capacity:    30,
	}

	slot, err := f.svc.Create(context.Background(), input, adminActor("admin1"))

	require.NoError(t, err)
	assert.Equal(t, "m1", slot.MonasteryID)
	assert.Equal(t, domain.TimeOfDayBreakfast, slot.TimeOfDay)
	assert.True(t, slot.IsAvailable)
	assert.NotEmpty(t, slot.ID)
}

func TestSlotService_Create_SuperAdminBypassesOwnership(t *testing.T) {
	f := newSlotFixture(t)

	f.monasteryRepo.EXPECT().GetByID(mock.Anything, "m1").Return(testMonastery(), nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateSlotInput{
		MonasteryID: "m1",
		Date:        time.Now().AddDate(0, 0, 7),
		TimeOfDay:   domain.TimeOfDayLunch,
		Capacity:    30,
	}

	_, err := f.svc.Create(context.Background(), input, superActor("root"))

	require.NoError(t, err)
}

func TestSlotService_Create_WrongMonastery(t *testing.T) {
	f := newSlotFixture(t)

	f.monasteryRepo.EXPECT().GetByID(mock.Anything, "m1").Return(testMonastery(), nil)

	input := domain.CreateSlotInput{
		MonasteryID: "m1",
		Date:        time.Now().AddDate(0, 0, 7),
		TimeOfDay:   domain.TimeOfDayLunch,
		Capacity:    30,
	}

	_, err := f.svc.Create(context.Background(), input, adminActor("other-admin"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotYourMonastery)
}

func TestSlotService_Create_DonorRejected(t *testing.T) {
	f := newSlotFixture(t)

	f.monasteryRepo.EXPECT().GetByID(mock.Anything, "m1").Return(testMonastery(), nil)

	input := domain.CreateSlotInput{
		MonasteryID: "m1",
		Date:        time.Now().AddDate(0, 0, 7),
		TimeOfDay:   domain.TimeOfDayLunch,
		Capacity:    30,
	}

	_, err := f.svc.Create(context.Background(), input, donorActor("u1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSlotService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateSlotInput
	}{
		{
			name: "zero capacity",
			input: domain.CreateSlotInput{
				MonasteryID: "m1",
				Date:        time.Now().AddDate(0, 0, 7),
				TimeOfDay:   domain.TimeOfDayLunch,
			},
		},
		{
			name: "bad time of day",
			input: domain.CreateSlotInput{
				MonasteryID: "m1",
				Date:        time.Now().AddDate(0, 0, 7),
				TimeOfDay:   "dinner",
				Capacity:    30,
			},
		},
		{
			name: "past date",
			input: domain.CreateSlotInput{
				MonasteryID: "m1",
				Date:        time.Now().AddDate(0, 0, -2),
				TimeOfDay:   domain.TimeOfDayLunch,
				Capacity:    30,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSlotFixture(t)

			_, err := f.svc.Create(context.Background(), tt.input, adminActor("admin1"))

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSlotService_GetDetails(t *testing.T) {
	f := newSlotFixture(t)

	details := &domain.SlotDetails{
		Slot:      *testSlot(),
		Remaining: 35,
	}
	bookings := []*domain.Booking{
		{ID: "b1", SlotID: "s1", ServingCount: 10},
		{ID: "b2", SlotID: "s1", ServingCount: 5},
	}

	f.repo.EXPECT().GetDetails(mock.Anything, "s1").Return(details, nil)
	f.bookingRepo.EXPECT().ListBySlot(mock.Anything, "s1").Return(bookings, nil)

	got, err := f.svc.GetDetails(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 35, got.Remaining)
	require.Len(t, got.Bookings, 2)
	assert.Equal(t, "b1", got.Bookings[0].ID)
}

func TestSlotService_GetDetails_NotFound(t *testing.T) {
	f := newSlotFixture(t)

	f.repo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrSlotNotFound)

	_, err := f.svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestSlotService_CloseExpired(t *testing.T) {
	f := newSlotFixture(t)

	closed := []*domain.Slot{{ID: "s1"}, {ID: "s2"}}

	f.repo.EXPECT().CloseExpired(mock.Anything).Return(closed, nil)

	got, err := f.svc.CloseExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSlotService_CloseExpired_Error(t *testing.T) {
	f := newSlotFixture(t)

	f.repo.EXPECT().CloseExpired(mock.Anything).Return(nil, errors.New("db error"))

	_, err := f.svc.CloseExpired(context.Background())

	require.Error(t, err)
}
