package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/app/models/dto"
	"github.com/teamsync/teamsync/internal/app/services"
	"github.com/teamsync/teamsync/internal/middleware"
)

// MeetingController handles meeting and participant endpoints.
type MeetingController struct {
	meetingService services.MeetingService
}

// NewMeetingController creates a new instance of MeetingController.
func NewMeetingController(meetingService services.MeetingService) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
	}
}

// GetAllMeetings returns every meeting ordered by date.
func (c *MeetingController) GetAllMeetings(ctx *gin.Context) {
	meetings, err := c.meetingService.GetAllMeetings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(meetings))
}

// GetMeeting returns a single meeting by id.
func (c *MeetingController) GetMeeting(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meeting, err := c.meetingService.GetMeeting(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(meeting))
}

// GetUserMeetings returns the meetings a user created or participates
// in, ordered by date.
func (c *MeetingController) GetUserMeetings(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	meetings, err := c.meetingService.GetMeetingsByUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(meetings))
}

// CreateMeeting schedules a new meeting. The creator is added as an
// accepted participant automatically.
func (c *MeetingController) CreateMeeting(ctx *gin.Context) {
	var req dto.CreateMeetingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	meeting, err := c.meetingService.CreateMeeting(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(meeting))
}

// UpdateMeeting applies a partial update to an existing meeting.
func (c *MeetingController) UpdateMeeting(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMeetingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	meeting, err := c.meetingService.UpdateMeeting(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(meeting))
}

// DeleteMeeting removes a meeting by id.
func (c *MeetingController) DeleteMeeting(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.meetingService.DeleteMeeting(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetParticipants returns the participant roster of a meeting with
// each entry's user profile attached.
func (c *MeetingController) GetParticipants(ctx *gin.Context) {
	meetingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	participants, err := c.meetingService.GetParticipants(ctx, meetingID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participants))
}

// AddParticipant invites a user to a meeting.
func (c *MeetingController) AddParticipant(ctx *gin.Context) {
	meetingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddParticipantRequest
	if !bindJSON(ctx, &req) {
		return
	}

	participant, err := c.meetingService.AddParticipant(ctx, meetingID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(participant))
}

// UpdateParticipantStatus changes a participant row's RSVP status.
func (c *MeetingController) UpdateParticipantStatus(ctx *gin.Context) {
	participantID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateParticipantStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	participant, err := c.meetingService.UpdateParticipantStatus(ctx, participantID, models.ParticipantStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participant))
}

// RemoveParticipant removes one participant row for the given meeting
// and user pair.
func (c *MeetingController) RemoveParticipant(ctx *gin.Context) {
	meetingID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.meetingService.RemoveParticipant(ctx, meetingID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
