package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medportal/slotbooker/internal/domain"
	"github.com/medportal/slotbooker/internal/metrics"
	"github.com/medportal/slotbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReserveInput struct {
	SlotID    string
	Requester domain.Requester
}

// ReservationService runs the claim protocol. It keeps no state between
// requests; correctness rests on the repository's atomic claim, so any number
// of requests for the same slot can run concurrently from any number of
// processes and exactly one will commit.
type ReservationService struct {
	slotRepo    ports.SlotRepo
	bookingRepo ports.BookingRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	autoConfirm bool
	now         func() time.Time
}

func NewReservationService(
	slotRepo ports.SlotRepo,
	bookingRepo ports.BookingRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	autoConfirm bool,
) *ReservationService {
	return &ReservationService{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
		autoConfirm: autoConfirm,
		now:         time.Now,
	}
}

func (s *ReservationService) Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error) {
	if err := input.Requester.Validate(); err != nil {
		return nil, err
	}

	// Never trust a client-cached slot: re-fetch and re-check right before
	// the claim.
	slot, err := s.slotRepo.GetByID(ctx, input.SlotID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotFound) {
			metrics.ReservationsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
			return nil, err
		}
		metrics.ReservationsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("fetch slot: %w", err)
	}

	if !slot.Bookable(s.now()) {
		metrics.ReservationsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, domain.ErrSlotNotBookable
	}

	status := domain.BookingStatusPending
	if s.autoConfirm {
		status = domain.BookingStatusConfirmed
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		SlotID:    slot.ID,
		UserID:    input.Requester.UserID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if g := input.Requester.Guest; g != nil {
		booking.GuestName = &g.Name
		booking.GuestEmail = &g.Email
		booking.GuestPhone = &g.Phone
	}

	event := domain.SlotEvent{
		Type: domain.EventSlotBooked,
		Payload: domain.SlotBookedPayload{
			SlotID:       slot.ID,
			BookingID:    booking.ID,
			ResourceType: string(slot.ResourceType),
			RecipientID:  booking.UserID,
			BookedAt:     now,
		},
	}

	if err = s.slotRepo.Claim(ctx, booking, event); err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotClaimed):
			// Lost the race at commit time. Nothing was persisted.
			metrics.ReservationsTotal.WithLabelValues(metrics.ResultConflict).Inc()
			return nil, err
		case errors.Is(err, domain.ErrSlotNotFound):
			metrics.ReservationsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
			return nil, err
		default:
			metrics.ReservationsTotal.WithLabelValues(metrics.ResultError).Inc()
			return nil, fmt.Errorf("claim slot: %w", err)
		}
	}

	metrics.ReservationsTotal.WithLabelValues(metrics.ResultCommitted).Inc()
	s.logger.Info("slot booked",
		logger.String("booking_id", booking.ID),
		logger.String("slot_id", slot.ID),
		logger.String("status", string(booking.Status)),
	)

	// Fire-and-forget; a sink failure must never roll back a committed claim.
	go s.notifier.NotifySlotBooked(context.WithoutCancel(ctx), booking, slot)

	return booking, nil
}

func (s *ReservationService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
