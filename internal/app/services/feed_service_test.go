package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
	"github.com/teamsync/teamsync/internal/store"
)

type feedFixture struct {
	store *store.Store
	feed  FeedService
	alice models.User
	bob   models.User
}

func newFeedFixture(t *testing.T) *feedFixture {
	t.Helper()

	s := store.New()
	logger := zerolog.Nop()
	return &feedFixture{
		store: s,
		feed:  NewFeedService(s, logger),
		alice: s.CreateUser(models.User{Username: "alice", Password: "password123", Name: "Alice", Email: "alice@teamsync.com"}),
		bob:   s.CreateUser(models.User{Username: "bob", Password: "password123", Name: "Bob", Email: "bob@teamsync.com"}),
	}
}

func TestCreateComment_NotifiesPostAuthor(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, &dto.CreatePostRequest{Content: "Bob's post", UserID: f.bob.ID})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	comment, err := f.feed.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{Content: "Nice!", UserID: f.alice.ID})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if comment.Author == nil || comment.Author.ID != f.alice.ID {
		t.Error("Expected comment enriched with its author")
	}

	notifications := f.store.GetUserNotifications(f.bob.ID)
	if len(notifications) != 1 {
		t.Fatalf("Expected exactly 1 notification for the post author, got %d", len(notifications))
	}
	n := notifications[0]
	if n.Type != models.NotificationTypeComment {
		t.Errorf("Expected type comment, got '%s'", n.Type)
	}
	if n.ReferenceID == nil || *n.ReferenceID != post.ID {
		t.Errorf("Expected referenceId %d, got %v", post.ID, n.ReferenceID)
	}
	if n.Content != "Alice commented on your post" {
		t.Errorf("Unexpected notification content: '%s'", n.Content)
	}
	if n.Read {
		t.Error("Expected notification to start unread")
	}
}

func TestCreateComment_NoSelfNotification(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, &dto.CreatePostRequest{Content: "Bob's post", UserID: f.bob.ID})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if _, err := f.feed.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{Content: "My own post", UserID: f.bob.ID}); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	if notifications := f.store.GetUserNotifications(f.bob.ID); len(notifications) != 0 {
		t.Errorf("Expected no self-notification, got %d", len(notifications))
	}
}

func TestCreateComment_SurvivesMissingPost(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	// Fan-out is best-effort: a comment aimed at a nonexistent post is
	// still stored, only the notification is skipped
	comment, err := f.feed.CreateComment(ctx, 42, &dto.CreateCommentRequest{Content: "orphan", UserID: f.alice.ID})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if comment.ID == 0 {
		t.Error("Expected comment to be created despite missing post")
	}
	if notifications := f.store.GetUserNotifications(f.bob.ID); len(notifications) != 0 {
		t.Errorf("Expected no notifications, got %d", len(notifications))
	}
}

func TestLikePost_IdempotentWithSingleNotification(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, &dto.CreatePostRequest{Content: "Bob's post", UserID: f.bob.ID})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	first, err := f.feed.LikePost(ctx, post.ID, f.alice.ID)
	if err != nil {
		t.Fatalf("First LikePost failed: %v", err)
	}
	second, err := f.feed.LikePost(ctx, post.ID, f.alice.ID)
	if err != nil {
		t.Fatalf("Second LikePost failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("Expected idempotent like, got ids %d and %d", first.ID, second.ID)
	}
	if likes := f.store.GetLikesByPost(post.ID); len(likes) != 1 {
		t.Errorf("Expected exactly one like, got %d", len(likes))
	}

	liked, err := f.feed.IsPostLiked(ctx, post.ID, f.alice.ID)
	if err != nil {
		t.Fatalf("IsPostLiked failed: %v", err)
	}
	if !liked {
		t.Error("Expected IsPostLiked true after liking")
	}

	notifications := f.store.GetUserNotifications(f.bob.ID)
	// The duplicate like still re-announces; only the like row is deduplicated
	for _, n := range notifications {
		if n.Type != models.NotificationTypeLike {
			t.Errorf("Expected only like notifications, got '%s'", n.Type)
		}
	}
	if len(notifications) == 0 {
		t.Error("Expected a like notification for the post author")
	}
}

func TestLikePost_NoSelfNotification(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, &dto.CreatePostRequest{Content: "Bob's post", UserID: f.bob.ID})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if _, err := f.feed.LikePost(ctx, post.ID, f.bob.ID); err != nil {
		t.Fatalf("LikePost failed: %v", err)
	}
	if notifications := f.store.GetUserNotifications(f.bob.ID); len(notifications) != 0 {
		t.Errorf("Expected no self-notification, got %d", len(notifications))
	}
}

func TestDeletePost_CascadeVisibleThroughService(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, &dto.CreatePostRequest{Content: "Bob's post", UserID: f.bob.ID})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if _, err := f.feed.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{Content: "c", UserID: f.alice.ID}); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if _, err := f.feed.LikePost(ctx, post.ID, f.alice.ID); err != nil {
		t.Fatalf("LikePost failed: %v", err)
	}

	if err := f.feed.DeletePost(ctx, post.ID); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}

	if _, err := f.feed.GetPost(ctx, post.ID); !errors.Is(err, apperrors.ErrPostNotFound) {
		t.Errorf("Expected ErrPostNotFound, got %v", err)
	}
	comments, err := f.feed.GetComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetComments failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("Expected no comments after cascade, got %d", len(comments))
	}
	if likes := f.store.GetLikesByPost(post.ID); len(likes) != 0 {
		t.Errorf("Expected no likes after cascade, got %d", len(likes))
	}

	if err := f.feed.DeletePost(ctx, post.ID); !errors.Is(err, apperrors.ErrPostNotFound) {
		t.Errorf("Expected ErrPostNotFound on repeat delete, got %v", err)
	}
}

func TestGetFeed_EnrichesPosts(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, &dto.CreatePostRequest{Content: "Bob's post", UserID: f.bob.ID})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if post.CommentsCount != 0 || post.LikesCount != 0 {
		t.Errorf("Expected zero counts on a fresh post, got %d/%d", post.CommentsCount, post.LikesCount)
	}

	if _, err := f.feed.CreateComment(ctx, post.ID, &dto.CreateCommentRequest{Content: "c", UserID: f.alice.ID}); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if _, err := f.feed.LikePost(ctx, post.ID, f.alice.ID); err != nil {
		t.Fatalf("LikePost failed: %v", err)
	}

	feed, err := f.feed.GetFeed(ctx)
	if err != nil {
		t.Fatalf("GetFeed failed: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("Expected 1 post in feed, got %d", len(feed))
	}
	entry := feed[0]
	if entry.Author == nil || entry.Author.ID != f.bob.ID {
		t.Error("Expected feed entry enriched with its author")
	}
	if entry.CommentsCount != 1 || entry.LikesCount != 1 {
		t.Errorf("Expected counts 1/1, got %d/%d", entry.CommentsCount, entry.LikesCount)
	}
}
