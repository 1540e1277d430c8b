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

// MeetingService defines the interface for meeting and participant
// operations
type MeetingService interface {
	GetAllMeetings(ctx context.Context) ([]models.Meeting, error)
	GetMeeting(ctx context.Context, id int64) (models.Meeting, error)
	GetMeetingsByUser(ctx context.Context, userID int64) ([]models.Meeting, error)
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (models.Meeting, error)
	UpdateMeeting(ctx context.Context, id int64, req *dto.UpdateMeetingRequest) (models.Meeting, error)
	DeleteMeeting(ctx context.Context, id int64) error
	GetParticipants(ctx context.Context, meetingID int64) ([]models.MeetingParticipant, error)
	AddParticipant(ctx context.Context, meetingID int64, req *dto.AddParticipantRequest) (models.MeetingParticipant, error)
	UpdateParticipantStatus(ctx context.Context, participantID int64, status models.ParticipantStatus) (models.MeetingParticipant, error)
	RemoveParticipant(ctx context.Context, meetingID, userID int64) error
}

// meetingServiceImpl implements MeetingService
type meetingServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(store *store.Store, logger zerolog.Logger) MeetingService {
	return &meetingServiceImpl{
		store:  store,
		logger: logger,
	}
}

// GetAllMeetings returns every meeting, ordered by date
func (s *meetingServiceImpl) GetAllMeetings(ctx context.Context) ([]models.Meeting, error) {
	return s.store.GetAllMeetings(), nil
}

// GetMeeting returns a single meeting by id
func (s *meetingServiceImpl) GetMeeting(ctx context.Context, id int64) (models.Meeting, error) {
	return s.store.GetMeeting(id)
}

// GetMeetingsByUser returns the meetings a user created or
// participates in
func (s *meetingServiceImpl) GetMeetingsByUser(ctx context.Context, userID int64) ([]models.Meeting, error) {
	return s.store.GetMeetingsByUser(userID), nil
}

// CreateMeeting schedules a meeting and adds the creator as an
// accepted participant
func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (models.Meeting, error) {
	meeting := s.store.CreateMeeting(models.Meeting{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Duration:    req.Duration,
		Location:    req.Location,
		CreatedBy:   req.CreatedBy,
	})

	s.store.AddMeetingParticipant(models.MeetingParticipant{
		MeetingID: meeting.ID,
		UserID:    meeting.CreatedBy,
		Status:    models.ParticipantStatusAccepted,
	})

	s.logger.Info().Int64("meetingId", meeting.ID).Int64("createdBy", meeting.CreatedBy).Msg("Meeting created")
	return meeting, nil
}

// UpdateMeeting applies a partial update to a meeting
func (s *meetingServiceImpl) UpdateMeeting(ctx context.Context, id int64, req *dto.UpdateMeetingRequest) (models.Meeting, error) {
	return s.store.UpdateMeeting(id, store.MeetingPatch{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Duration:    req.Duration,
		Location:    req.Location,
	})
}

// DeleteMeeting removes a meeting. Participant rows are left behind;
// meeting deletion does not cascade.
func (s *meetingServiceImpl) DeleteMeeting(ctx context.Context, id int64) error {
	if !s.store.DeleteMeeting(id) {
		return apperrors.NewCustomError(apperrors.ErrMeetingNotFound, fmt.Sprintf("Meeting with id %d not found", id))
	}
	s.logger.Info().Int64("meetingId", id).Msg("Meeting deleted")
	return nil
}

// GetParticipants returns the participant rows of a meeting, each
// enriched with the full user record when it resolves
func (s *meetingServiceImpl) GetParticipants(ctx context.Context, meetingID int64) ([]models.MeetingParticipant, error) {
	participants := s.store.GetMeetingParticipants(meetingID)
	for i := range participants {
		if user, err := s.store.GetUser(participants[i].UserID); err == nil {
			participants[i].User = &user
		}
	}
	return participants, nil
}

// AddParticipant invites a user to a meeting. Duplicate invitations
// for the same pair produce duplicate rows; RemoveParticipant takes
// them out one at a time.
func (s *meetingServiceImpl) AddParticipant(ctx context.Context, meetingID int64, req *dto.AddParticipantRequest) (models.MeetingParticipant, error) {
	participant := s.store.AddMeetingParticipant(models.MeetingParticipant{
		MeetingID: meetingID,
		UserID:    req.UserID,
		Status:    models.ParticipantStatus(req.Status),
	})

	s.logger.Info().Int64("meetingId", meetingID).Int64("userId", req.UserID).Msg("Participant added")
	return participant, nil
}

// UpdateParticipantStatus changes the invitation status of a
// participant row, addressed by row id
func (s *meetingServiceImpl) UpdateParticipantStatus(ctx context.Context, participantID int64, status models.ParticipantStatus) (models.MeetingParticipant, error) {
	return s.store.UpdateParticipantStatus(participantID, status)
}

// RemoveParticipant removes one participant row matching the pair
func (s *meetingServiceImpl) RemoveParticipant(ctx context.Context, meetingID, userID int64) error {
	if !s.store.RemoveMeetingParticipant(meetingID, userID) {
		return apperrors.NewCustomError(apperrors.ErrParticipantNotFound, fmt.Sprintf("User %d is not a participant of meeting %d", userID, meetingID))
	}
	s.logger.Info().Int64("meetingId", meetingID).Int64("userId", userID).Msg("Participant removed")
	return nil
}
