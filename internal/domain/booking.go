package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
)

// ActiveStatuses are the statuses that keep a slot claimed. At most one
// booking per slot may ever be in one of them.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID         string        `json:"id"`
	SlotID     string        `json:"slot_id"`
	UserID     *string       `json:"user_id,omitempty"`
	GuestName  *string       `json:"guest_name,omitempty"`
	GuestEmail *string       `json:"guest_email,omitempty"`
	GuestPhone *string       `json:"guest_phone,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
