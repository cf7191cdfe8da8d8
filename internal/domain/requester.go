package domain

import "fmt"

type GuestContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Requester struct {
	UserID *string       `json:"user_id,omitempty"`
	Guest  *GuestContact `json:"guest,omitempty"`
}

func (r Requester) Validate() error {
	switch {
	case r.UserID != nil && r.Guest != nil:
		return fmt.Errorf("%w: requester must be a registered user or a guest, not both", ErrValidation)
	case r.UserID != nil:
		if *r.UserID == "" {
			return fmt.Errorf("%w: user id is empty", ErrValidation)
		}
	case r.Guest != nil:
		if r.Guest.Name == "" || r.Guest.Email == "" || r.Guest.Phone == "" {
			return fmt.Errorf("%w: guest booking requires name, email and phone", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: requester is required", ErrValidation)
	}
	return nil
}
