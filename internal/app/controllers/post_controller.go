package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/app/services"
	"github.com/teamsync/teamsync/internal/middleware"
)

// PostController handles the feed endpoints: posts, comments and
// likes.
type PostController struct {
	feedService services.FeedService
}

// NewPostController creates a new instance of PostController.
func NewPostController(feedService services.FeedService) *PostController {
	return &PostController{
		feedService: feedService,
	}
}

// GetFeed returns every post newest first, enriched with author and
// engagement counts.
func (c *PostController) GetFeed(ctx *gin.Context) {
	posts, err := c.feedService.GetFeed(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// GetPost returns a single post with its full comment and like lists.
func (c *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	post, err := c.feedService.GetPost(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// GetUserPosts returns one user's posts newest first.
func (c *PostController) GetUserPosts(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	posts, err := c.feedService.GetUserPosts(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// CreatePost publishes a new post to the feed.
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.feedService.CreatePost(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// UpdatePost applies a partial update to an existing post.
func (c *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.feedService.UpdatePost(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// DeletePost removes a post along with its comments and likes.
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feedService.DeletePost(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetComments returns a post's comments oldest first, enriched with
// their authors.
func (c *PostController) GetComments(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	comments, err := c.feedService.GetComments(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comments))
}

// CreateComment adds a comment to a post and notifies the post author.
func (c *PostController) CreateComment(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	comment, err := c.feedService.CreateComment(ctx, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// DeleteComment removes a comment by id.
func (c *PostController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feedService.DeleteComment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// LikePost records a like for a post. Liking a post twice returns the
// existing like instead of creating a second row.
func (c *PostController) LikePost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateLikeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	like, err := c.feedService.LikePost(ctx, postID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(like))
}

// UnlikePost removes a user's like from a post.
func (c *PostController) UnlikePost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.feedService.UnlikePost(ctx, postID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetLikeStatus reports whether the given user has liked the post.
func (c *PostController) GetLikeStatus(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	liked, err := c.feedService.IsPostLiked(ctx, postID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LikeStatusResponse{IsLiked: liked}))
}
