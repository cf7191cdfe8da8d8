package domain

import "errors"

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	// ErrSlotNotBookable: the slot failed the validity check before the
	// claim was attempted (flag already false, or end time passed).
	ErrSlotNotBookable = errors.New("slot is no longer available")
	// ErrSlotClaimed: another request won the atomic claim first.
	ErrSlotClaimed = errors.New("slot was claimed by another request")
)

var (
	ErrValidation = errors.New("validation error")
)
