package models

// ParticipantStatus defines the invitation state of a meeting participant
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
	ParticipantStatusDeclined ParticipantStatus = "declined"
)

// NotificationType defines the kind of event a notification describes
type NotificationType string

const (
	NotificationTypeMeeting NotificationType = "meeting"
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeTeam    NotificationType = "team"
)
