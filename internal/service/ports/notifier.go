package ports

import (
	"context"

	"github.com/medportal/slotbooker/internal/domain"
)

type BookingNotifier interface {
	NotifySlotBooked(ctx context.Context, booking *domain.Booking, slot *domain.Slot)
}
