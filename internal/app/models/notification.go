package models

import "time"

// Notification defines an event record delivered to a single user.
// Fan-out never produces one for the acting user themselves.
type Notification struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"` // Recipient
	Type        NotificationType `json:"type"`
	Content     string           `json:"content"`
	ReferenceID *int64           `json:"referenceId"` // Post or meeting id, nullable
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"createdAt"`
}
