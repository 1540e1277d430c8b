package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
	"github.com/teamsync/teamsync/internal/store"
)

// FeedService defines the interface for the social feed: posts,
// comments, likes, and the notification fan-out their creation
// triggers
type FeedService interface {
	GetFeed(ctx context.Context) ([]dto.PostResponse, error)
	GetPost(ctx context.Context, id int64) (dto.PostDetailResponse, error)
	GetUserPosts(ctx context.Context, userID int64) ([]dto.PostResponse, error)
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (dto.PostResponse, error)
	UpdatePost(ctx context.Context, id int64, req *dto.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	GetComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error)
	CreateComment(ctx context.Context, postID int64, req *dto.CreateCommentRequest) (dto.CommentResponse, error)
	DeleteComment(ctx context.Context, id int64) error
	LikePost(ctx context.Context, postID, userID int64) (models.Like, error)
	UnlikePost(ctx context.Context, postID, userID int64) error
	IsPostLiked(ctx context.Context, postID, userID int64) (bool, error)
}

// feedServiceImpl implements FeedService
type feedServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(store *store.Store, logger zerolog.Logger) FeedService {
	return &feedServiceImpl{
		store:  store,
		logger: logger,
	}
}

// GetFeed returns every post newest first, enriched with author and
// engagement counts
func (s *feedServiceImpl) GetFeed(ctx context.Context) ([]dto.PostResponse, error) {
	return s.enrichPosts(s.store.GetAllPosts()), nil
}

// GetPost returns a single post enriched with its author and the full
// comment and like lists
func (s *feedServiceImpl) GetPost(ctx context.Context, id int64) (dto.PostDetailResponse, error) {
	post, err := s.store.GetPost(id)
	if err != nil {
		return dto.PostDetailResponse{}, err
	}

	detail := dto.PostDetailResponse{
		Post:     post,
		Comments: s.enrichComments(s.store.GetCommentsByPost(id)),
		Likes:    s.store.GetLikesByPost(id),
	}
	if author, err := s.store.GetUser(post.UserID); err == nil {
		detail.Author = &author
	}
	return detail, nil
}

// GetUserPosts returns the posts authored by a user, enriched like the
// main feed
func (s *feedServiceImpl) GetUserPosts(ctx context.Context, userID int64) ([]dto.PostResponse, error) {
	return s.enrichPosts(s.store.GetUserPosts(userID)), nil
}

// CreatePost publishes a post and returns it with zero counts
func (s *feedServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (dto.PostResponse, error) {
	post := s.store.CreatePost(models.Post{
		Content:   req.Content,
		UserID:    req.UserID,
		MediaURLs: req.MediaURLs,
	})

	s.logger.Info().Int64("postId", post.ID).Int64("userId", post.UserID).Msg("Post created")

	response := dto.PostResponse{Post: post}
	if author, err := s.store.GetUser(post.UserID); err == nil {
		response.Author = &author
	}
	return response, nil
}

// UpdatePost applies a partial update to a post
func (s *feedServiceImpl) UpdatePost(ctx context.Context, id int64, req *dto.UpdatePostRequest) (models.Post, error) {
	return s.store.UpdatePost(id, store.PostPatch{
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
	})
}

// DeletePost removes a post together with its comments and likes
func (s *feedServiceImpl) DeletePost(ctx context.Context, id int64) error {
	if !s.store.DeletePost(id) {
		return apperrors.NewCustomError(apperrors.ErrPostNotFound, fmt.Sprintf("Post with id %d not found", id))
	}
	s.logger.Info().Int64("postId", id).Msg("Post deleted with its comments and likes")
	return nil
}

// GetComments returns the comments on a post oldest first, enriched
// with their authors
func (s *feedServiceImpl) GetComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error) {
	return s.enrichComments(s.store.GetCommentsByPost(postID)), nil
}

// CreateComment records a comment and notifies the post's author,
// unless the commenter is the author
func (s *feedServiceImpl) CreateComment(ctx context.Context, postID int64, req *dto.CreateCommentRequest) (dto.CommentResponse, error) {
	comment := s.store.CreateComment(models.Comment{
		Content: req.Content,
		PostID:  postID,
		UserID:  req.UserID,
	})

	s.logger.Info().Int64("commentId", comment.ID).Int64("postId", postID).Msg("Comment created")
	s.notifyPostAuthor(postID, comment.UserID, models.NotificationTypeComment, "%s commented on your post")

	response := dto.CommentResponse{Comment: comment}
	if author, err := s.store.GetUser(comment.UserID); err == nil {
		response.Author = &author
	}
	return response, nil
}

// DeleteComment removes a single comment
func (s *feedServiceImpl) DeleteComment(ctx context.Context, id int64) error {
	if !s.store.DeleteComment(id) {
		return apperrors.NewCustomError(apperrors.ErrCommentNotFound, fmt.Sprintf("Comment with id %d not found", id))
	}
	return nil
}

// LikePost records a like and notifies the post's author, unless the
// liker is the author. Liking twice returns the existing like.
func (s *feedServiceImpl) LikePost(ctx context.Context, postID, userID int64) (models.Like, error) {
	like := s.store.CreateLike(models.Like{PostID: postID, UserID: userID})

	s.logger.Info().Int64("postId", postID).Int64("userId", userID).Msg("Post liked")
	s.notifyPostAuthor(postID, userID, models.NotificationTypeLike, "%s liked your post")

	return like, nil
}

// UnlikePost removes a like. No notification is involved.
func (s *feedServiceImpl) UnlikePost(ctx context.Context, postID, userID int64) error {
	if !s.store.DeleteLike(postID, userID) {
		return apperrors.NewCustomError(apperrors.ErrLikeNotFound, fmt.Sprintf("User %d has no like on post %d", userID, postID))
	}
	return nil
}

// IsPostLiked reports whether the user liked the post
func (s *feedServiceImpl) IsPostLiked(ctx context.Context, postID, userID int64) (bool, error) {
	return s.store.IsPostLikedByUser(postID, userID), nil
}

// notifyPostAuthor creates a notification for the author of the post,
// skipping self-notification. The fan-out is best-effort: a failed
// lookup is logged and swallowed so the triggering comment or like
// always survives.
func (s *feedServiceImpl) notifyPostAuthor(postID, actorID int64, notificationType models.NotificationType, contentFormat string) {
	post, err := s.store.GetPost(postID)
	if err != nil {
		s.logger.Warn().Int64("postId", postID).Err(err).Msg("Skipping notification, post not found")
		return
	}
	if post.UserID == actorID {
		return
	}

	actor, err := s.store.GetUser(actorID)
	if err != nil {
		s.logger.Warn().Int64("userId", actorID).Err(err).Msg("Skipping notification, actor not found")
		return
	}

	referenceID := postID
	s.store.CreateNotification(models.Notification{
		UserID:      post.UserID,
		Type:        notificationType,
		Content:     fmt.Sprintf(contentFormat, actor.Name),
		ReferenceID: &referenceID,
	})
}

// enrichPosts attaches author and engagement counts to raw posts
func (s *feedServiceImpl) enrichPosts(posts []models.Post) []dto.PostResponse {
	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		response := dto.PostResponse{
			Post:          post,
			CommentsCount: len(s.store.GetCommentsByPost(post.ID)),
			LikesCount:    len(s.store.GetLikesByPost(post.ID)),
		}
		if author, err := s.store.GetUser(post.UserID); err == nil {
			response.Author = &author
		}
		responses = append(responses, response)
	}
	return responses
}

// enrichComments attaches authors to raw comments
func (s *feedServiceImpl) enrichComments(comments []models.Comment) []dto.CommentResponse {
	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response := dto.CommentResponse{Comment: comment}
		if author, err := s.store.GetUser(comment.UserID); err == nil {
			response.Author = &author
		}
		responses = append(responses, response)
	}
	return responses
}
