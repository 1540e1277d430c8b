package dto

// CreateNotificationRequest carries the fields needed to record a
// notification directly, outside the comment/like fan-out path
type CreateNotificationRequest struct {
	UserID      int64  `json:"userId" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=meeting comment like team"`
	Content     string `json:"content" binding:"required"`
	ReferenceID *int64 `json:"referenceId"`
}
