package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medportal/slotbooker/internal/domain"
	"github.com/medportal/slotbooker/internal/metrics"
	"github.com/medportal/slotbooker/internal/service/ports"
)

// CatalogService answers which slots are open for a resource type within a
// window. The stored availability flag lags wall-clock time, so every listed
// slot is re-checked against the Bookable predicate before it leaves here.
type CatalogService struct {
	slotRepo ports.SlotRepo
	now      func() time.Time
}

func NewCatalogService(slotRepo ports.SlotRepo) *CatalogService {
	return &CatalogService{
		slotRepo: slotRepo,
		now:      time.Now,
	}
}

func (s *CatalogService) CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error) {
	if !input.ResourceType.Valid() {
		return nil, fmt.Errorf("%w: resource_type must be call or physical", domain.ErrValidation)
	}
	if !input.StartTime.Before(input.EndTime) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	if input.Location != nil && input.ResourceType != domain.ResourcePhysical {
		return nil, fmt.Errorf("%w: location is only valid for physical slots", domain.ErrValidation)
	}

	slot := &domain.Slot{
		ID:           uuid.New().String(),
		ResourceType: input.ResourceType,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Location:     input.Location,
		Available:    true,
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	metrics.SlotsCreated.Inc()

	return slot, nil
}

func (s *CatalogService) GetSlot(ctx context.Context, id string) (*domain.Slot, error) {
	return s.slotRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListOpen(ctx context.Context, rt domain.ResourceType, from, to time.Time) ([]*domain.Slot, error) {
	if !rt.Valid() {
		return nil, fmt.Errorf("%w: resource_type must be call or physical", domain.ErrValidation)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end is before range start", domain.ErrValidation)
	}

	slots, err := s.slotRepo.ListOpen(ctx, rt, from, to)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", err)
	}

	now := s.now()
	res := make([]*domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.Bookable(now) {
			res = append(res, slot)
		}
	}

	return res, nil
}
