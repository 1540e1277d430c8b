package store

import (
	"time"

	"github.com/teamsync/teamsync/internal/app/models"
)

// newTestStore returns a store whose clock advances one second per
// createdAt stamp, so ordering assertions never race the wall clock.
func newTestStore() *Store {
	s := New()
	current := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	return s
}

func seedUser(s *Store, username, name string) models.User {
	return s.CreateUser(models.User{
		Username: username,
		Password: "password123",
		Name:     name,
		Email:    username + "@teamsync.com",
	})
}
