package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
	"github.com/teamsync/teamsync/internal/store"
)

// NotificationService defines the interface for notification inbox
// operations. Fan-out from comments and likes happens in the feed
// service; this service covers direct creation and inbox management.
type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (models.Notification, error)
	MarkAsRead(ctx context.Context, id int64) (models.Notification, error)
	DeleteNotification(ctx context.Context, id int64) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(store *store.Store, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		store:  store,
		logger: logger,
	}
}

// GetUserNotifications returns a recipient's notifications newest first
func (s *notificationServiceImpl) GetUserNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.store.GetUserNotifications(userID), nil
}

// CreateNotification records a notification directly
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (models.Notification, error) {
	notification := s.store.CreateNotification(models.Notification{
		UserID:      req.UserID,
		Type:        models.NotificationType(req.Type),
		Content:     req.Content,
		ReferenceID: req.ReferenceID,
	})

	s.logger.Info().
		Int64("notificationId", notification.ID).
		Int64("userId", notification.UserID).
		Str("type", string(notification.Type)).
		Msg("Notification created")
	return notification, nil
}

// MarkAsRead sets the read flag on a notification
func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, id int64) (models.Notification, error) {
	return s.store.MarkNotificationRead(id)
}

// DeleteNotification removes a notification from the inbox
func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, id int64) error {
	if !s.store.DeleteNotification(id) {
		return apperrors.NewCustomError(apperrors.ErrNotificationNotFound, fmt.Sprintf("Notification with id %d not found", id))
	}
	return nil
}
