package ports

import (
	"context"

	"github.com/medportal/slotbooker/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
