package models

import "time"

// Post defines a feed entry authored by a user
type Post struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"userId"`
	MediaURLs []string  `json:"mediaUrls,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment defines a reply attached to a post
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Like marks that a user liked a post. At most one exists per
// (postId, userId) pair.
type Like struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
