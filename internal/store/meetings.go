package store

import (
	"sort"
	"time"

	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

// MeetingPatch carries the fields a partial meeting update may change.
type MeetingPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Duration    *int
	Location    *string
}

// CreateMeeting assigns the next meeting id, stamps the creation time
// and stores the record. CreatedBy is assumed to reference an existing
// user; the store does not verify it.
func (s *Store) CreateMeeting(meeting models.Meeting) models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meetingID++
	meeting.ID = s.meetingID
	meeting.CreatedAt = s.now()
	s.meetings[meeting.ID] = meeting
	return meeting
}

// GetMeeting returns the meeting with the given id.
func (s *Store) GetMeeting(id int64) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, apperrors.ErrMeetingNotFound
	}
	return meeting, nil
}

// GetAllMeetings returns every meeting ordered by date ascending.
func (s *Store) GetAllMeetings() []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetings := make([]models.Meeting, 0, len(s.meetings))
	for _, meeting := range s.meetings {
		meetings = append(meetings, meeting)
	}
	sortMeetingsByDate(meetings)
	return meetings
}

// GetMeetingsByUser returns the union of meetings the user created and
// meetings the user participates in, deduplicated by meeting id and
// ordered by date ascending.
func (s *Store) GetMeetingsByUser(userID int64) []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]bool)
	meetings := make([]models.Meeting, 0)

	for _, meeting := range s.meetings {
		if meeting.CreatedBy == userID {
			seen[meeting.ID] = true
			meetings = append(meetings, meeting)
		}
	}

	for _, participant := range s.participants {
		if participant.UserID != userID || seen[participant.MeetingID] {
			continue
		}
		// Participant rows may outlive a deleted meeting
		meeting, ok := s.meetings[participant.MeetingID]
		if !ok {
			continue
		}
		seen[meeting.ID] = true
		meetings = append(meetings, meeting)
	}

	sortMeetingsByDate(meetings)
	return meetings
}

// UpdateMeeting merges the patch over the stored record and replaces it.
func (s *Store) UpdateMeeting(id int64, patch MeetingPatch) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, apperrors.ErrMeetingNotFound
	}

	if patch.Title != nil {
		meeting.Title = *patch.Title
	}
	if patch.Description != nil {
		meeting.Description = *patch.Description
	}
	if patch.Date != nil {
		meeting.Date = *patch.Date
	}
	if patch.Duration != nil {
		meeting.Duration = *patch.Duration
	}
	if patch.Location != nil {
		meeting.Location = *patch.Location
	}

	s.meetings[id] = meeting
	return meeting, nil
}

// DeleteMeeting removes the meeting and reports whether it existed.
// Participant rows are intentionally left behind: meeting deletion
// does not cascade, unlike post deletion.
func (s *Store) DeleteMeeting(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.meetings[id]
	delete(s.meetings, id)
	return ok
}

// GetMeetingParticipants returns the participant rows for a meeting
// ordered by row id.
func (s *Store) GetMeetingParticipants(meetingID int64) []models.MeetingParticipant {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants := make([]models.MeetingParticipant, 0)
	for _, participant := range s.participants {
		if participant.MeetingID == meetingID {
			participants = append(participants, participant)
		}
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })
	return participants
}

// AddMeetingParticipant always inserts a new row. It deliberately does
// not check for an existing (meetingId, userId) pair, matching the
// observed behavior of the system it reimplements: adding the same
// membership twice yields two rows.
func (s *Store) AddMeetingParticipant(participant models.MeetingParticipant) models.MeetingParticipant {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.participantID++
	participant.ID = s.participantID
	participant.User = nil
	s.participants[participant.ID] = participant
	return participant
}

// UpdateParticipantStatus replaces the status of the participant row
// with the given row id.
func (s *Store) UpdateParticipantStatus(id int64, status models.ParticipantStatus) (models.MeetingParticipant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participant, ok := s.participants[id]
	if !ok {
		return models.MeetingParticipant{}, apperrors.ErrParticipantNotFound
	}

	participant.Status = status
	s.participants[id] = participant
	return participant, nil
}

// RemoveMeetingParticipant deletes one participant row matching the
// (meetingId, userId) pair and reports whether one was found. If
// duplicate rows exist, only one is removed per call.
func (s *Store) RemoveMeetingParticipant(meetingID, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, participant := range s.participants {
		if participant.MeetingID == meetingID && participant.UserID == userID {
			delete(s.participants, id)
			return true
		}
	}
	return false
}

func sortMeetingsByDate(meetings []models.Meeting) {
	sort.Slice(meetings, func(i, j int) bool {
		if meetings[i].Date.Equal(meetings[j].Date) {
			return meetings[i].ID < meetings[j].ID
		}
		return meetings[i].Date.Before(meetings[j].Date)
	})
}
