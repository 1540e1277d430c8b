package store

import (
	"sort"

	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

// CreateNotification assigns the next notification id, stamps the
// creation time and stores the record.
func (s *Store) CreateNotification(notification models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationID++
	notification.ID = s.notificationID
	notification.CreatedAt = s.now()
	s.notifications[notification.ID] = notification
	return notification
}

// GetUserNotifications returns the notifications for a recipient,
// newest first.
func (s *Store) GetUserNotifications(userID int64) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]models.Notification, 0)
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt.Equal(notifications[j].CreatedAt) {
			return notifications[i].ID > notifications[j].ID
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications
}

// MarkNotificationRead sets the read flag on a notification.
func (s *Store) MarkNotificationRead(id int64) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[id]
	if !ok {
		return models.Notification{}, apperrors.ErrNotificationNotFound
	}

	notification.Read = true
	s.notifications[id] = notification
	return notification, nil
}

// DeleteNotification removes the notification and reports whether it
// existed.
func (s *Store) DeleteNotification(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.notifications[id]
	delete(s.notifications, id)
	return ok
}
