package store

import (
	"errors"
	"testing"

	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

func TestGetAllPosts_NewestFirst(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")

	first := s.CreatePost(models.Post{Content: "first", UserID: alice.ID})
	second := s.CreatePost(models.Post{Content: "second", UserID: alice.ID})
	third := s.CreatePost(models.Post{Content: "third", UserID: alice.ID})

	posts := s.GetAllPosts()
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	want := []int64{third.ID, second.ID, first.ID}
	for i, post := range posts {
		if post.ID != want[i] {
			t.Errorf("Expected post %d at index %d, got %d", want[i], i, post.ID)
		}
		if i > 0 && posts[i-1].CreatedAt.Before(post.CreatedAt) {
			t.Errorf("Expected descending createdAt order at index %d", i)
		}
	}
}

func TestGetUserPosts_FiltersByAuthor(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	bob := seedUser(s, "bob", "Bob")

	s.CreatePost(models.Post{Content: "from alice", UserID: alice.ID})
	s.CreatePost(models.Post{Content: "from bob", UserID: bob.ID})
	s.CreatePost(models.Post{Content: "also alice", UserID: alice.ID})

	posts := s.GetUserPosts(alice.ID)
	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts for alice, got %d", len(posts))
	}
	if posts[0].Content != "also alice" {
		t.Errorf("Expected newest post first, got '%s'", posts[0].Content)
	}
}

func TestGetCommentsByPost_OldestFirst(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	post := s.CreatePost(models.Post{Content: "post", UserID: alice.ID})

	first := s.CreateComment(models.Comment{Content: "first", PostID: post.ID, UserID: alice.ID})
	second := s.CreateComment(models.Comment{Content: "second", PostID: post.ID, UserID: alice.ID})

	// A comment on another post stays out of the thread
	other := s.CreatePost(models.Post{Content: "other", UserID: alice.ID})
	s.CreateComment(models.Comment{Content: "elsewhere", PostID: other.ID, UserID: alice.ID})

	comments := s.GetCommentsByPost(post.ID)
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != first.ID || comments[1].ID != second.ID {
		t.Errorf("Expected ascending order [%d %d], got [%d %d]", first.ID, second.ID, comments[0].ID, comments[1].ID)
	}
}

func TestCreateLike_Idempotent(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	bob := seedUser(s, "bob", "Bob")
	post := s.CreatePost(models.Post{Content: "post", UserID: bob.ID})

	first := s.CreateLike(models.Like{PostID: post.ID, UserID: alice.ID})
	second := s.CreateLike(models.Like{PostID: post.ID, UserID: alice.ID})

	if first.ID != second.ID {
		t.Errorf("Expected the existing like back, got ids %d and %d", first.ID, second.ID)
	}
	if likes := s.GetLikesByPost(post.ID); len(likes) != 1 {
		t.Errorf("Expected exactly one like, got %d", len(likes))
	}
	if !s.IsPostLikedByUser(post.ID, alice.ID) {
		t.Error("Expected IsPostLikedByUser to report true")
	}

	// A different user still gets their own like
	s.CreateLike(models.Like{PostID: post.ID, UserID: bob.ID})
	if likes := s.GetLikesByPost(post.ID); len(likes) != 2 {
		t.Errorf("Expected 2 likes after second user, got %d", len(likes))
	}
}

func TestDeleteLike(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	post := s.CreatePost(models.Post{Content: "post", UserID: alice.ID})
	s.CreateLike(models.Like{PostID: post.ID, UserID: alice.ID})

	if !s.DeleteLike(post.ID, alice.ID) {
		t.Fatal("DeleteLike failed")
	}
	if s.DeleteLike(post.ID, alice.ID) {
		t.Error("Expected second DeleteLike to report false")
	}
	if s.IsPostLikedByUser(post.ID, alice.ID) {
		t.Error("Expected IsPostLikedByUser to report false after delete")
	}
}

func TestDeletePost_CascadesToCommentsAndLikes(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	bob := seedUser(s, "bob", "Bob")

	post := s.CreatePost(models.Post{Content: "doomed", UserID: alice.ID})
	kept := s.CreatePost(models.Post{Content: "kept", UserID: alice.ID})

	doomedComment := s.CreateComment(models.Comment{Content: "c1", PostID: post.ID, UserID: bob.ID})
	keptComment := s.CreateComment(models.Comment{Content: "c2", PostID: kept.ID, UserID: bob.ID})
	s.CreateLike(models.Like{PostID: post.ID, UserID: bob.ID})
	s.CreateLike(models.Like{PostID: kept.ID, UserID: bob.ID})

	if !s.DeletePost(post.ID) {
		t.Fatal("DeletePost failed")
	}

	if _, err := s.GetPost(post.ID); !errors.Is(err, apperrors.ErrPostNotFound) {
		t.Errorf("Expected ErrPostNotFound, got %v", err)
	}
	if _, err := s.GetComment(doomedComment.ID); !errors.Is(err, apperrors.ErrCommentNotFound) {
		t.Errorf("Expected cascade to delete comment, got %v", err)
	}
	if got := s.GetCommentsByPost(post.ID); len(got) != 0 {
		t.Errorf("Expected no comments for deleted post, got %d", len(got))
	}
	if got := s.GetLikesByPost(post.ID); len(got) != 0 {
		t.Errorf("Expected no likes for deleted post, got %d", len(got))
	}

	// The neighbor post is untouched
	if _, err := s.GetComment(keptComment.ID); err != nil {
		t.Errorf("Expected neighbor comment to survive, got %v", err)
	}
	if got := s.GetLikesByPost(kept.ID); len(got) != 1 {
		t.Errorf("Expected neighbor like to survive, got %d", len(got))
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	s := newTestStore()

	if s.DeletePost(5) {
		t.Error("Expected delete of absent post to report false")
	}
}

func TestUpdatePost_MergesPatch(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	post := s.CreatePost(models.Post{Content: "before", UserID: alice.ID, MediaURLs: []string{"a.png"}})

	content := "after"
	updated, err := s.UpdatePost(post.ID, PostPatch{Content: &content})
	if err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}
	if updated.Content != "after" {
		t.Errorf("Expected content updated, got '%s'", updated.Content)
	}
	if len(updated.MediaURLs) != 1 {
		t.Errorf("Expected media urls unchanged, got %v", updated.MediaURLs)
	}
	if !updated.CreatedAt.Equal(post.CreatedAt) {
		t.Error("Expected createdAt unchanged by update")
	}
}
