package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

// HandleAPIError maps store and service errors to HTTP responses.
// Controllers funnel every service error through here so the status
// code mapping lives in one place. When the error is a CustomError its
// message and details pass through to the response body.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrUserNotFound,
		apperrors.ErrMeetingNotFound,
		apperrors.ErrParticipantNotFound,
		apperrors.ErrPostNotFound,
		apperrors.ErrCommentNotFound,
		apperrors.ErrLikeNotFound,
		apperrors.ErrNotificationNotFound,
		apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			errorDetail(dto.ErrorCodeResourceNotFound, err)))

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case apperrors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			errorDetail(dto.ErrorCodeValidationFailed, err)))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// errorDetail builds the response detail, carrying over any context a
// CustomError holds.
func errorDetail(code dto.ErrorCode, err error) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(code, err.Error())

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		detail = detail.WithDetails(customErr.Details)
	}
	return detail
}
