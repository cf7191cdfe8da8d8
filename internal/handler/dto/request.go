package dto

type CreateSlotRequest struct {
	ResourceType string  `json:"resource_type" binding:"required,oneof=call physical"`
	Date         string  `json:"date" binding:"required"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	Location     *string `json:"location"`
}

type GuestInfo struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type ReserveRequest struct {
	SlotID string     `json:"slot_id" binding:"required,uuid"`
	Guest  *GuestInfo `json:"guest"`
}
