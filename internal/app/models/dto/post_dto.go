package dto

import "github.com/teamsync/teamsync/internal/app/models"

// CreatePostRequest carries the fields needed to publish a feed post
type CreatePostRequest struct {
	Content   string   `json:"content" binding:"required"`
	UserID    int64    `json:"userId" binding:"required"`
	MediaURLs []string `json:"mediaUrls"`
}

// UpdatePostRequest carries a partial post update
type UpdatePostRequest struct {
	Content   *string  `json:"content"`
	MediaURLs []string `json:"mediaUrls"`
}

// CreateCommentRequest carries the fields needed to comment on a post.
// The post id comes from the URL path.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	UserID  int64  `json:"userId" binding:"required"`
}

// CreateLikeRequest identifies the liking user. The post id comes from
// the URL path.
type CreateLikeRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// PostResponse is a post enriched with its author and engagement
// counts, computed at read time
type PostResponse struct {
	models.Post
	Author        *models.User `json:"author,omitempty"`
	CommentsCount int          `json:"commentsCount"`
	LikesCount    int          `json:"likesCount"`
}

// PostDetailResponse is a post enriched with its author and the full
// comment and like lists
type PostDetailResponse struct {
	models.Post
	Author   *models.User      `json:"author,omitempty"`
	Comments []CommentResponse `json:"comments"`
	Likes    []models.Like     `json:"likes"`
}

// CommentResponse is a comment enriched with its author
type CommentResponse struct {
	models.Comment
	Author *models.User `json:"author,omitempty"`
}

// LikeStatusResponse reports whether a user liked a post
type LikeStatusResponse struct {
	IsLiked bool `json:"isLiked"`
}
