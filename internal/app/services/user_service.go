package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/store"
)

// UserService defines the interface for user directory operations
type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (models.User, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(store *store.Store, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		store:  store,
		logger: logger,
	}
}

// GetUsers returns every user in the directory
func (s *userServiceImpl) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.store.GetUsers(), nil
}

// GetUser returns a single user by id
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.store.GetUser(id)
}

// CreateUser registers a new user
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (models.User, error) {
	user := s.store.CreateUser(models.User{
		Username:     req.Username,
		Password:     req.Password,
		Name:         req.Name,
		Email:        req.Email,
		Title:        req.Title,
		Department:   req.Department,
		ProfileImage: req.ProfileImage,
		Skills:       req.Skills,
	})

	s.logger.Info().Int64("userId", user.ID).Str("username", user.Username).Msg("User created")
	return user, nil
}

// UpdateUser applies a partial update to a user
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (models.User, error) {
	return s.store.UpdateUser(id, store.UserPatch{
		Username:     req.Username,
		Password:     req.Password,
		Name:         req.Name,
		Email:        req.Email,
		Title:        req.Title,
		Department:   req.Department,
		ProfileImage: req.ProfileImage,
		Skills:       req.Skills,
	})
}
