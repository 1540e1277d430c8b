package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/app/services"
	"github.com/teamsync/teamsync/internal/middleware"
)

// AuthController handles login requests.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new instance of AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a user by username and password and returns the
// matching user on success.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}
