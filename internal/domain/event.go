package domain

import "time"

const EventSlotBooked = "slot.booked"

// SlotEvent is a catalog change event. Events are written to the outbox in
// the same transaction as the change they describe and relayed to the broker
// afterwards, so catalog subscribers never see an event for a claim that
// rolled back.
type SlotEvent struct {
	Type    string
	Payload any
}

type SlotBookedPayload struct {
	SlotID       string    `json:"slot_id"`
	BookingID    string    `json:"booking_id"`
	ResourceType string    `json:"resource_type"`
	RecipientID  *string   `json:"recipient_id,omitempty"`
	BookedAt     time.Time `json:"booked_at"`
}

// OutboxEvent is a stored, not-yet-published SlotEvent.
type OutboxEvent struct {
	ID        string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}
