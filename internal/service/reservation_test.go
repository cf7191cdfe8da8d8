package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medportal/slotbooker/internal/domain"
	"github.com/medportal/slotbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func strPtr(s string) *string { return &s }

func openSlot(end time.Time) *domain.Slot {
	return &domain.Slot{
		ID:           "s1",
		ResourceType: domain.ResourceCall,
		Date:         end.Truncate(24 * time.Hour),
		StartTime:    end.Add(-30 * time.Minute),
		EndTime:      end,
		Available:    true,
	}
}

func TestReservationService_Reserve_Committed(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	now := time.Date(2025, 3, 1, 9, 59, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	slot := openSlot(now.Add(31 * time.Minute))

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	slotRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifySlotBooked(mock.Anything, mock.Anything, slot).Return()

	booking, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "s1",
		Requester: domain.Requester{UserID: strPtr("u1")},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "s1", booking.SlotID)
	assert.Equal(t, "u1", *booking.UserID)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Reserve_PendingPolicy(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, false)

	now := time.Date(2025, 3, 1, 9, 59, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	slot := openSlot(now.Add(31 * time.Minute))

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	slotRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifySlotBooked(mock.Anything, mock.Anything, slot).Return()

	booking, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "s1",
		Requester: domain.Requester{UserID: strPtr("u1")},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_GuestBooking(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	now := time.Date(2025, 3, 1, 9, 59, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	slot := openSlot(now.Add(31 * time.Minute))

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	slotRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking, event domain.SlotEvent) {
			require.Nil(t, b.UserID)
			require.NotNil(t, b.GuestName)
			assert.Equal(t, "Jane", *b.GuestName)
			assert.Equal(t, "j@x.com", *b.GuestEmail)
		}).
		Return(nil)
	notifier.EXPECT().NotifySlotBooked(mock.Anything, mock.Anything, slot).Return()

	booking, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID: "s1",
		Requester: domain.Requester{
			Guest: &domain.GuestContact{Name: "Jane", Email: "j@x.com", Phone: "+921234567"},
		},
	})

	require.NoError(t, err)
	assert.Nil(t, booking.UserID)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_InvalidFlagDown(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	now := time.Date(2025, 3, 1, 9, 59, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	slot := openSlot(now.Add(31 * time.Minute))
	slot.Available = false

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "s1",
		Requester: domain.Requester{UserID: strPtr("u1")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotBookable)
}

func TestReservationService_Reserve_InvalidExpired(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	end := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return end.Add(time.Second) }
	slot := openSlot(end)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "s1",
		Requester: domain.Requester{UserID: strPtr("u1")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotBookable)
}

func TestReservationService_Reserve_Conflict(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	now := time.Date(2025, 3, 1, 9, 59, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	slot := openSlot(now.Add(31 * time.Minute))

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	slotRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrSlotClaimed)

	// The loser gets a conflict and no notification fires.
	booking, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "s1",
		Requester: domain.Requester{UserID: strPtr("u1")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotClaimed)
	assert.Nil(t, booking)
}

func TestReservationService_Reserve_SlotNotFound(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	slotRepo.EXPECT().GetByID(mock.Anything, "zzz").Return(nil, domain.ErrSlotNotFound)

	_, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "zzz",
		Requester: domain.Requester{UserID: strPtr("u1")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestReservationService_Reserve_ClaimStoreError(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	now := time.Date(2025, 3, 1, 9, 59, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	slot := openSlot(now.Add(31 * time.Minute))

	storeErr := errors.New("connection reset")
	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	slotRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything).Return(storeErr)

	_, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "s1",
		Requester: domain.Requester{UserID: strPtr("u1")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domain.ErrSlotClaimed)
}

func TestReservationService_Reserve_InvalidRequester(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	// No repo calls at all for a malformed requester.
	_, err := svc.Reserve(context.Background(), ReserveInput{
		SlotID:    "s1",
		Requester: domain.Requester{},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ListByUser(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(slotRepo, bookingRepo, notifier, log, true)

	bookings := []*domain.Booking{
		{ID: "b1", SlotID: "s1", UserID: strPtr("u1"), Status: domain.BookingStatusConfirmed},
	}
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
