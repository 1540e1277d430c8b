package models

import "time"

// Meeting defines a scheduled team meeting
type Meeting struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"` // Minutes, always positive
	Location    string    `json:"location,omitempty"`
	CreatedBy   int64     `json:"createdBy"` // Assumed to reference an existing user; not enforced here
	CreatedAt   time.Time `json:"createdAt"`
}

// MeetingParticipant links a user to a meeting with an invitation status.
// It carries no timestamp of its own.
type MeetingParticipant struct {
	ID        int64             `json:"id"`
	MeetingID int64             `json:"meetingId"`
	UserID    int64             `json:"userId"`
	Status    ParticipantStatus `json:"status"`

	// Related entities
	User *User `json:"user,omitempty"`
}
