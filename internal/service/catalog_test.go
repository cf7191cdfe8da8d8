package service

import (
	"context"
	"testing"
	"time"

	"github.com/medportal/slotbooker/internal/domain"
	"github.com/medportal/slotbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateSlot_Success(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(slotRepo)

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	slotRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	slot, err := svc.CreateSlot(context.Background(), domain.CreateSlotInput{
		ResourceType: domain.ResourceCall,
		Date:         start.Truncate(24 * time.Hour),
		StartTime:    start,
		EndTime:      start.Add(30 * time.Minute),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.True(t, slot.Available)
}

func TestCatalogService_CreateSlot_Validation(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	loc := "clinic A"

	tests := []struct {
		name  string
		input domain.CreateSlotInput
	}{
		{
			name: "unknown resource type",
			input: domain.CreateSlotInput{
				ResourceType: "video",
				StartTime:    start,
				EndTime:      start.Add(time.Hour),
			},
		},
		{
			name: "start after end",
			input: domain.CreateSlotInput{
				ResourceType: domain.ResourceCall,
				StartTime:    start.Add(time.Hour),
				EndTime:      start,
			},
		},
		{
			name: "start equals end",
			input: domain.CreateSlotInput{
				ResourceType: domain.ResourceCall,
				StartTime:    start,
				EndTime:      start,
			},
		},
		{
			name: "location on a call slot",
			input: domain.CreateSlotInput{
				ResourceType: domain.ResourceCall,
				StartTime:    start,
				EndTime:      start.Add(time.Hour),
				Location:     &loc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slotRepo := mocks.NewMockSlotRepo(t)
			svc := NewCatalogService(slotRepo)

			_, err := svc.CreateSlot(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatalogService_ListOpen_FiltersExpired(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(slotRepo)

	now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	// The stored flag lags: all three are flagged available but one ended
	// in the past and one ends exactly now.
	slots := []*domain.Slot{
		{ID: "past", Available: true, EndTime: now.Add(-time.Hour)},
		{ID: "boundary", Available: true, EndTime: now},
		{ID: "future", Available: true, EndTime: now.Add(time.Hour)},
	}
	slotRepo.EXPECT().ListOpen(mock.Anything, domain.ResourceCall, from, to).Return(slots, nil)

	result, err := svc.ListOpen(context.Background(), domain.ResourceCall, from, to)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "future", result[0].ID)
}

func TestCatalogService_ListOpen_BadRange(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(slotRepo)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := svc.ListOpen(context.Background(), domain.ResourcePhysical, from, to)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_ListOpen_BadType(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(slotRepo)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ListOpen(context.Background(), "teleport", from, from.AddDate(0, 0, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_GetSlot(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(slotRepo)

	slot := &domain.Slot{ID: "s1", Available: true}
	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	result, err := svc.GetSlot(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, slot, result)
}
