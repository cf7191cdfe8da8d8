package ports

import (
	"context"
	"time"

	"github.com/medportal/slotbooker/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	ListOpen(ctx context.Context, rt domain.ResourceType, from, to time.Time) ([]*domain.Slot, error)
	// Claim atomically flips the slot unavailable, inserts the booking and
	// stages the event, succeeding only if the slot is still available at
	// write time. Returns domain.ErrSlotClaimed when another request won.
	Claim(ctx context.Context, b *domain.Booking, event domain.SlotEvent) error
}
