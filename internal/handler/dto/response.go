package dto

import (
	"time"

	"github.com/medportal/slotbooker/internal/domain"
)

const (
	ReservationStatusConflict = "conflict"
	ReservationStatusInvalid  = "invalid"
)

// SlotTakenMessage is the one message shown for both invalid and conflict
// outcomes; no technical detail leaks to the end user.
const SlotTakenMessage = "this slot was just taken, please choose another"

type SlotResponse struct {
	ID           string  `json:"id"`
	ResourceType string  `json:"resource_type"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Location     *string `json:"location,omitempty"`
	Available    bool    `json:"available"`
}

type BookingResponse struct {
	ID        string  `json:"id"`
	SlotID    string  `json:"slot_id"`
	UserID    *string `json:"user_id,omitempty"`
	GuestName *string `json:"guest_name,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type ReservationResponse struct {
	Status    string `json:"status"`
	BookingID string `json:"booking_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:           s.ID,
		ResourceType: string(s.ResourceType),
		Date:         s.Date.Format("2006-01-02"),
		StartTime:    s.StartTime.Format(time.RFC3339),
		EndTime:      s.EndTime.Format(time.RFC3339),
		Location:     s.Location,
		Available:    s.Available,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		SlotID:    b.SlotID,
		UserID:    b.UserID,
		GuestName: b.GuestName,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
