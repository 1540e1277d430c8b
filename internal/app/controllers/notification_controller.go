package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/app/services"
	"github.com/teamsync/teamsync/internal/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new instance of NotificationController.
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// GetUserNotifications returns a user's notifications newest first.
func (c *NotificationController) GetUserNotifications(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	notifications, err := c.notificationService.GetUserNotifications(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notifications))
}

// CreateNotification records a notification for a user.
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	notification, err := c.notificationService.CreateNotification(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(notification))
}

// MarkAsRead marks a notification as read and returns the updated row.
func (c *NotificationController) MarkAsRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	notification, err := c.notificationService.MarkAsRead(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notification))
}

// DeleteNotification removes a notification by id.
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.DeleteNotification(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
