package dto

import "time"

// CreateMeetingRequest carries the fields needed to schedule a meeting
type CreateMeetingRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Duration    int       `json:"duration" binding:"required,gt=0"`
	Location    string    `json:"location"`
	CreatedBy   int64     `json:"createdBy" binding:"required"`
}

// UpdateMeetingRequest carries a partial meeting update
type UpdateMeetingRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Duration    *int       `json:"duration" binding:"omitempty,gt=0"`
	Location    *string    `json:"location"`
}

// AddParticipantRequest invites a user to a meeting. The meeting id
// comes from the URL path.
type AddParticipantRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending accepted declined"`
}

// UpdateParticipantStatusRequest changes the invitation status of a
// participant row
type UpdateParticipantStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted declined"`
}
