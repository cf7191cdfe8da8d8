package domain

import "time"

type ResourceType string

const (
	ResourceCall     ResourceType = "call"
	ResourcePhysical ResourceType = "physical"
)

func (r ResourceType) Valid() bool {
	return r == ResourceCall || r == ResourcePhysical
}

type Slot struct {
	ID           string       `json:"id"`
	ResourceType ResourceType `json:"resource_type"`
	Date         time.Time    `json:"date"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	Location     *string      `json:"location,omitempty"`
	Available    bool         `json:"available"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Bookable reports whether the slot can still be claimed at the given moment.
// The stored availability flag can lag wall-clock time, so a slot whose end
// time has been reached is expired even while the flag still reads true.
// Every expiry decision in the service goes through this one predicate.
func (s *Slot) Bookable(now time.Time) bool {
	return s.Available && now.Before(s.EndTime)
}

type CreateSlotInput struct {
	ResourceType ResourceType
	Date         time.Time
	StartTime    time.Time
	EndTime      time.Time
	Location     *string
}
