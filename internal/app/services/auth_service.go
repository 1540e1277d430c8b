package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
	"github.com/teamsync/teamsync/internal/store"
)

// AuthService defines the interface for login operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(store *store.Store, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:  store,
		logger: logger,
	}
}

// Login checks the demo credentials against the directory. This is a
// plaintext compare, not a security boundary.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil || user.Password != password {
		s.logger.Debug().Str("username", username).Msg("Login rejected")
		return models.User{}, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userId", user.ID).Str("username", username).Msg("User logged in")
	return user, nil
}
