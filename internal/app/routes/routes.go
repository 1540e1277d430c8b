package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/teamsync/teamsync/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	meetingController *controllers.MeetingController,
	postController *controllers.PostController,
	notificationController *controllers.NotificationController,
) {
	api := router.Group("/api")

	// Auth routes
	api.POST("/login", authController.Login)

	// User routes
	users := api.Group("/users")
	{
		users.GET("", userController.GetUsers)
		users.POST("", userController.CreateUser)
		users.GET("/:id", userController.GetUser)
		users.PATCH("/:id", userController.UpdateUser)
		users.GET("/:id/meetings", meetingController.GetUserMeetings)
		users.GET("/:id/posts", postController.GetUserPosts)
		users.GET("/:id/notifications", notificationController.GetUserNotifications)
	}

	// Meeting routes
	meetings := api.Group("/meetings")
	{
		meetings.GET("", meetingController.GetAllMeetings)
		meetings.POST("", meetingController.CreateMeeting)
		meetings.GET("/:id", meetingController.GetMeeting)
		meetings.PATCH("/:id", meetingController.UpdateMeeting)
		meetings.DELETE("/:id", meetingController.DeleteMeeting)
		meetings.GET("/:id/participants", meetingController.GetParticipants)
		meetings.POST("/:id/participants", meetingController.AddParticipant)
		meetings.DELETE("/:id/participants/:userId", meetingController.RemoveParticipant)
	}

	// Participant rows are addressed by their own id for status changes
	api.PATCH("/meeting-participants/:id", meetingController.UpdateParticipantStatus)

	// Post routes
	posts := api.Group("/posts")
	{
		posts.GET("", postController.GetFeed)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPost)
		posts.PATCH("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
		posts.GET("/:id/comments", postController.GetComments)
		posts.POST("/:id/comments", postController.CreateComment)
		posts.POST("/:id/likes", postController.LikePost)
		posts.GET("/:id/likes/:userId", postController.GetLikeStatus)
		posts.DELETE("/:id/likes/:userId", postController.UnlikePost)
	}

	api.DELETE("/comments/:id", postController.DeleteComment)

	// Notification routes
	notifications := api.Group("/notifications")
	{
		notifications.POST("", notificationController.CreateNotification)
		notifications.PATCH("/:id", notificationController.MarkAsRead)
		notifications.DELETE("/:id", notificationController.DeleteNotification)
	}
}
