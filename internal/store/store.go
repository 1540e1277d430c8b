// Package store owns every entity record of the application. It keeps
// one in-memory arena per entity type: a map from integer id to record
// plus a monotonically increasing counter. Ids start at 1 and are never
// reused, even after deletion. All state is reset when the process
// restarts.
//
// A single mutex guards every operation because compound operations
// (cascade delete, participant removal by pair, idempotent like)
// read then write and are only correct under mutual exclusion.
// Callers always receive copies; stored records are replaced
// wholesale, never mutated in place.
package store

import (
	"sync"
	"time"

	"github.com/teamsync/teamsync/internal/app/models"
)

// Store holds all entity collections and their id counters.
type Store struct {
	mu sync.Mutex

	users         map[int64]models.User
	meetings      map[int64]models.Meeting
	participants  map[int64]models.MeetingParticipant
	posts         map[int64]models.Post
	comments      map[int64]models.Comment
	likes         map[int64]models.Like
	notifications map[int64]models.Notification

	userID         int64
	meetingID      int64
	participantID  int64
	postID         int64
	commentID      int64
	likeID         int64
	notificationID int64

	// now stamps createdAt; overridable in tests
	now func() time.Time
}

// New creates an empty Store. The store is constructed once at process
// start and handed to consumers by reference; its lifetime is the
// process lifetime.
func New() *Store {
	return &Store{
		users:         make(map[int64]models.User),
		meetings:      make(map[int64]models.Meeting),
		participants:  make(map[int64]models.MeetingParticipant),
		posts:         make(map[int64]models.Post),
		comments:      make(map[int64]models.Comment),
		likes:         make(map[int64]models.Like),
		notifications: make(map[int64]models.Notification),
		now:           time.Now,
	}
}
