package store

import (
	"errors"
	"testing"
	"time"

	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
)

func seedMeeting(s *Store, title string, createdBy int64, date time.Time) models.Meeting {
	return s.CreateMeeting(models.Meeting{
		Title:     title,
		Date:      date,
		Duration:  60,
		Location:  "Conference Room A",
		CreatedBy: createdBy,
	})
}

func TestGetMeetingsByUser_UnionOfCreatedAndParticipating(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	bob := seedUser(s, "bob", "Bob")

	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	created := seedMeeting(s, "Created by Alice", alice.ID, base.Add(2*time.Hour))
	joined := seedMeeting(s, "Created by Bob", bob.ID, base)
	seedMeeting(s, "Unrelated", bob.ID, base.Add(time.Hour))

	// Alice participates in Bob's meeting, and is also listed as a
	// participant on her own meeting: the union must stay deduplicated.
	s.AddMeetingParticipant(models.MeetingParticipant{MeetingID: joined.ID, UserID: alice.ID, Status: models.ParticipantStatusAccepted})
	s.AddMeetingParticipant(models.MeetingParticipant{MeetingID: created.ID, UserID: alice.ID, Status: models.ParticipantStatusAccepted})

	meetings := s.GetMeetingsByUser(alice.ID)
	if len(meetings) != 2 {
		t.Fatalf("Expected 2 meetings, got %d", len(meetings))
	}
	// Date ascending: the joined meeting is earlier
	if meetings[0].ID != joined.ID {
		t.Errorf("Expected meeting %d first, got %d", joined.ID, meetings[0].ID)
	}
	if meetings[1].ID != created.ID {
		t.Errorf("Expected meeting %d second, got %d", created.ID, meetings[1].ID)
	}
}

func TestGetMeetingsByUser_SkipsDanglingParticipantRows(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	bob := seedUser(s, "bob", "Bob")

	meeting := seedMeeting(s, "Doomed", bob.ID, time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC))
	s.AddMeetingParticipant(models.MeetingParticipant{MeetingID: meeting.ID, UserID: alice.ID, Status: models.ParticipantStatusAccepted})

	// Meeting deletion does not cascade; the participant row dangles
	if !s.DeleteMeeting(meeting.ID) {
		t.Fatal("DeleteMeeting failed")
	}

	if got := s.GetMeetingsByUser(alice.ID); len(got) != 0 {
		t.Errorf("Expected no meetings after deletion, got %d", len(got))
	}
	if rows := s.GetMeetingParticipants(meeting.ID); len(rows) != 1 {
		t.Errorf("Expected the participant row to survive meeting deletion, got %d rows", len(rows))
	}
}

func TestUpdateMeeting_MergesPatch(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	meeting := seedMeeting(s, "Q2 Data Review", alice.ID, time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC))

	location := "Zoom"
	duration := 90
	updated, err := s.UpdateMeeting(meeting.ID, MeetingPatch{Location: &location, Duration: &duration})
	if err != nil {
		t.Fatalf("UpdateMeeting failed: %v", err)
	}
	if updated.Location != "Zoom" || updated.Duration != 90 {
		t.Errorf("Expected patched fields applied, got location=%s duration=%d", updated.Location, updated.Duration)
	}
	if updated.Title != "Q2 Data Review" {
		t.Errorf("Expected title unchanged, got '%s'", updated.Title)
	}
	if !updated.CreatedAt.Equal(meeting.CreatedAt) {
		t.Error("Expected createdAt unchanged by update")
	}
}

func TestDeleteMeeting_IDNeverReused(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")

	first := seedMeeting(s, "First", alice.ID, time.Now())
	if !s.DeleteMeeting(first.ID) {
		t.Fatal("DeleteMeeting failed")
	}
	if s.DeleteMeeting(first.ID) {
		t.Error("Expected second delete to report false")
	}

	second := seedMeeting(s, "Second", alice.ID, time.Now())
	if second.ID != first.ID+1 {
		t.Errorf("Expected id %d after deletion, got %d", first.ID+1, second.ID)
	}
}

func TestAddMeetingParticipant_PermitsDuplicatePairs(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	meeting := seedMeeting(s, "Weekly Sync", alice.ID, time.Now())

	p1 := s.AddMeetingParticipant(models.MeetingParticipant{MeetingID: meeting.ID, UserID: alice.ID, Status: models.ParticipantStatusPending})
	p2 := s.AddMeetingParticipant(models.MeetingParticipant{MeetingID: meeting.ID, UserID: alice.ID, Status: models.ParticipantStatusPending})

	if p1.ID == p2.ID {
		t.Error("Expected distinct row ids for duplicate membership")
	}
	if rows := s.GetMeetingParticipants(meeting.ID); len(rows) != 2 {
		t.Errorf("Expected 2 participant rows, got %d", len(rows))
	}

	// Removal by pair takes out one row per call
	if !s.RemoveMeetingParticipant(meeting.ID, alice.ID) {
		t.Fatal("RemoveMeetingParticipant failed")
	}
	if rows := s.GetMeetingParticipants(meeting.ID); len(rows) != 1 {
		t.Errorf("Expected 1 participant row after removal, got %d", len(rows))
	}
}

func TestRemoveMeetingParticipant_NotFound(t *testing.T) {
	s := newTestStore()

	if s.RemoveMeetingParticipant(1, 1) {
		t.Error("Expected removal of absent pair to report false")
	}
}

func TestUpdateParticipantStatus(t *testing.T) {
	s := newTestStore()
	alice := seedUser(s, "alice", "Alice")
	meeting := seedMeeting(s, "Weekly Sync", alice.ID, time.Now())
	participant := s.AddMeetingParticipant(models.MeetingParticipant{MeetingID: meeting.ID, UserID: alice.ID, Status: models.ParticipantStatusPending})

	updated, err := s.UpdateParticipantStatus(participant.ID, models.ParticipantStatusAccepted)
	if err != nil {
		t.Fatalf("UpdateParticipantStatus failed: %v", err)
	}
	if updated.Status != models.ParticipantStatusAccepted {
		t.Errorf("Expected status accepted, got '%s'", updated.Status)
	}

	_, err = s.UpdateParticipantStatus(999, models.ParticipantStatusDeclined)
	if !errors.Is(err, apperrors.ErrParticipantNotFound) {
		t.Errorf("Expected ErrParticipantNotFound, got %v", err)
	}
}
