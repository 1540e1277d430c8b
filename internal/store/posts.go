package store

import (
	"sort"

	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

// PostPatch carries the fields a partial post update may change.
type PostPatch struct {
	Content   *string
	MediaURLs []string
}

// CreatePost assigns the next post id, stamps the creation time and
// stores the record.
func (s *Store) CreatePost(post models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postID++
	post.ID = s.postID
	post.CreatedAt = s.now()
	s.posts[post.ID] = post
	return post
}

// GetPost returns the post with the given id.
func (s *Store) GetPost(id int64) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, apperrors.ErrPostNotFound
	}
	return post, nil
}

// GetAllPosts returns every post, newest first. Feeds read newest
// first; this ordering is part of the API contract.
func (s *Store) GetAllPosts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sortPostsNewestFirst(posts)
	return posts
}

// GetUserPosts returns the posts authored by a user, newest first.
func (s *Store) GetUserPosts(userID int64) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0)
	for _, post := range s.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	sortPostsNewestFirst(posts)
	return posts
}

// UpdatePost merges the patch over the stored record and replaces it.
func (s *Store) UpdatePost(id int64, patch PostPatch) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, apperrors.ErrPostNotFound
	}

	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.MediaURLs != nil {
		post.MediaURLs = patch.MediaURLs
	}

	s.posts[id] = post
	return post, nil
}

// DeletePost removes the post together with all its comments and
// likes. The cascade happens under one lock acquisition, so no caller
// can observe the post gone while its comments remain, or the reverse.
func (s *Store) DeletePost(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.posts[id]
	if !ok {
		return false
	}

	for commentID, comment := range s.comments {
		if comment.PostID == id {
			delete(s.comments, commentID)
		}
	}
	for likeID, like := range s.likes {
		if like.PostID == id {
			delete(s.likes, likeID)
		}
	}
	delete(s.posts, id)
	return true
}

// CreateComment assigns the next comment id, stamps the creation time
// and stores the record.
func (s *Store) CreateComment(comment models.Comment) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commentID++
	comment.ID = s.commentID
	comment.CreatedAt = s.now()
	s.comments[comment.ID] = comment
	return comment
}

// GetComment returns the comment with the given id.
func (s *Store) GetComment(id int64) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return models.Comment{}, apperrors.ErrCommentNotFound
	}
	return comment, nil
}

// GetCommentsByPost returns the comments on a post, oldest first.
// Threads read top down; this ordering is part of the API contract.
func (s *Store) GetCommentsByPost(postID int64) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]models.Comment, 0)
	for _, comment := range s.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments
}

// DeleteComment removes the comment and reports whether it existed.
func (s *Store) DeleteComment(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.comments[id]
	delete(s.comments, id)
	return ok
}

// CreateLike records that a user liked a post. The operation is
// idempotent: if a like for the (postId, userId) pair already exists,
// the existing record is returned unchanged and no new row is created.
func (s *Store) CreateLike(like models.Like) models.Like {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.likes {
		if existing.PostID == like.PostID && existing.UserID == like.UserID {
			return existing
		}
	}

	s.likeID++
	like.ID = s.likeID
	like.CreatedAt = s.now()
	s.likes[like.ID] = like
	return like
}

// GetLikesByPost returns the likes on a post ordered by row id.
func (s *Store) GetLikesByPost(postID int64) []models.Like {
	s.mu.Lock()
	defer s.mu.Unlock()

	likes := make([]models.Like, 0)
	for _, like := range s.likes {
		if like.PostID == postID {
			likes = append(likes, like)
		}
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i].ID < likes[j].ID })
	return likes
}

// DeleteLike removes the like matching the (postId, userId) pair and
// reports whether one was found.
func (s *Store) DeleteLike(postID, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, like := range s.likes {
		if like.PostID == postID && like.UserID == userID {
			delete(s.likes, id)
			return true
		}
	}
	return false
}

// IsPostLikedByUser reports whether a like exists for the pair.
func (s *Store) IsPostLikedByUser(postID, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, like := range s.likes {
		if like.PostID == postID && like.UserID == userID {
			return true
		}
	}
	return false
}

func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
