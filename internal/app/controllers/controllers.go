package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/middleware"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

// parseIDParam reads an integer path parameter and writes a 400
// response when it does not parse. The bool reports success.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		apiErr := apperrors.NewCustomError(apperrors.ErrBadRequest, "Invalid "+name+" parameter")
		middleware.HandleAPIError(ctx, apiErr.WithDetails(map[string]interface{}{
			name: "must be a valid number",
		}))
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates a JSON body, writing a 400 response on
// failure. The bool reports success.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
