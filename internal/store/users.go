package store

import (
	"sort"

	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

// UserPatch carries the fields a partial user update may change.
// Nil fields are left untouched. Id and createdAt can never change.
type UserPatch struct {
	Username     *string
	Password     *string
	Name         *string
	Email        *string
	Title        *string
	Department   *string
	ProfileImage *string
	Skills       []string
}

// CreateUser assigns the next user id, stamps the creation time and
// stores the record. Any id or createdAt on the input is ignored.
func (s *Store) CreateUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	user.ID = s.userID
	user.CreatedAt = s.now()
	s.users[user.ID] = user
	return user
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByUsername returns the user with the given login name.
func (s *Store) GetUserByUsername(username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// GetUsers returns all users ordered by id.
func (s *Store) GetUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// UpdateUser merges the patch over the stored record and replaces it.
func (s *Store) UpdateUser(id int64, patch UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Title != nil {
		user.Title = *patch.Title
	}
	if patch.Department != nil {
		user.Department = *patch.Department
	}
	if patch.ProfileImage != nil {
		user.ProfileImage = *patch.ProfileImage
	}
	if patch.Skills != nil {
		user.Skills = patch.Skills
	}

	s.users[id] = user
	return user, nil
}
