// Package seed populates a fresh store with demo data so the
// application is usable immediately after startup.
package seed

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/teamsync/teamsync/internal/app/models"
	"github.com/teamsync/teamsync/internal/store"
)

// CreateDefaultData fills the store with a small demo team: four
// users, three meetings with full rosters, three posts with comments
// and likes, and a handful of starter notifications. Ids are assigned
// by the store in insertion order, so users come out as 1..4 and
// meetings and posts as 1..3.
func CreateDefaultData(s *store.Store, lgr zerolog.Logger) {
	users := []models.User{
		{
			Username:     "sophia.chen",
			Password:     "password123",
			Name:         "Sophia Chen",
			Email:        "sophia@teamsync.com",
			Title:        "Data Team Lead",
			Department:   "Data Science",
			ProfileImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=80&h=80",
			Skills:       []string{"Leadership", "Data Strategy"},
		},
		{
			Username:     "david.lee",
			Password:     "password123",
			Name:         "David Lee",
			Email:        "david@teamsync.com",
			Title:        "Data Scientist",
			Department:   "Data Science",
			ProfileImage: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=80&h=80",
			Skills:       []string{"ML", "Python"},
		},
		{
			Username:     "sarah.williams",
			Password:     "password123",
			Name:         "Sarah Williams",
			Email:        "sarah@teamsync.com",
			Title:        "Data Analyst",
			Department:   "Analytics",
			ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=80&h=80",
			Skills:       []string{"SQL", "Tableau"},
		},
		{
			Username:     "mike.johnson",
			Password:     "password123",
			Name:         "Mike Johnson",
			Email:        "mike@teamsync.com",
			Title:        "Data Engineer",
			Department:   "Engineering",
			ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=80&h=80",
			Skills:       []string{"ETL", "AWS"},
		},
	}
	for _, u := range users {
		s.CreateUser(u)
	}

	now := time.Now()
	meetings := []models.Meeting{
		{
			Title:       "Q2 Data Review",
			Description: "Quarterly data review meeting",
			Date:        now,
			Duration:    60,
			Location:    "Conference Room A",
			CreatedBy:   1,
		},
		{
			Title:       "Project Kickoff: Data Pipeline",
			Description: "Kickoff meeting for new data pipeline project",
			Date:        now.Add(4 * time.Hour),
			Duration:    90,
			Location:    "Zoom",
			CreatedBy:   1,
		},
		{
			Title:       "Team Weekly Sync",
			Description: "Weekly team sync meeting",
			Date:        now.Add(2 * time.Hour),
			Duration:    60,
			Location:    "Conference Room B",
			CreatedBy:   1,
		},
	}
	for _, m := range meetings {
		s.CreateMeeting(m)
	}

	for meetingID := int64(1); meetingID <= 3; meetingID++ {
		for userID := int64(1); userID <= 4; userID++ {
			s.AddMeetingParticipant(models.MeetingParticipant{
				MeetingID: meetingID,
				UserID:    userID,
				Status:    models.ParticipantStatusAccepted,
			})
		}
	}

	posts := []models.Post{
		{
			Content:   "We've updated our data pipeline to handle 10x more volume. Check out the architecture diagram and key improvements.",
			UserID:    2,
			MediaURLs: []string{"https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&h=400"},
		},
		{
			Content:   "Our team has analyzed the Q1 results. Here are the key insights and recommendations for the next quarter.",
			UserID:    3,
			MediaURLs: []string{"https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?auto=format&fit=crop&w=800&h=400"},
		},
		{
			Content: "Check out the photos from our recent team building event. It was a great day of bonding and innovation.",
			UserID:  4,
			MediaURLs: []string{
				"https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&w=800&h=400",
				"https://images.unsplash.com/photo-1517048676732-d65bc937f952?auto=format&fit=crop&w=800&h=400",
			},
		},
	}
	for _, p := range posts {
		s.CreatePost(p)
	}

	comments := []models.Comment{
		{
			Content: "This is impressive! Can you share more details about the throughput improvements?",
			PostID:  1,
			UserID:  3,
		},
		{
			Content: "Sure, we've achieved ~850k records/min with the new setup. I'll share a detailed report in tomorrow's meeting.",
			PostID:  1,
			UserID:  2,
		},
		{
			Content: "Great analysis, Sarah! I especially like the proposed optimizations for our data collection process.",
			PostID:  2,
			UserID:  1,
		},
	}
	for _, c := range comments {
		s.CreateComment(c)
	}

	for userID := int64(1); userID <= 4; userID++ {
		for postID := int64(1); postID <= 3; postID++ {
			s.CreateLike(models.Like{PostID: postID, UserID: userID})
		}
	}

	meetingRef := int64(1)
	commentRef := int64(2)
	notifications := []models.Notification{
		{
			UserID:      1,
			Type:        models.NotificationTypeMeeting,
			Content:     "New meeting scheduled: Client QBR at 2:00 PM today",
			ReferenceID: &meetingRef,
		},
		{
			UserID:      1,
			Type:        models.NotificationTypeComment,
			Content:     "Michael commented: \"Great insights!\"",
			ReferenceID: &commentRef,
		},
		{
			UserID:  1,
			Type:    models.NotificationTypeTeam,
			Content: "Alex Johnson joined Data Team",
		},
	}
	for _, n := range notifications {
		s.CreateNotification(n)
	}

	lgr.Info().
		Int("users", len(users)).
		Int("meetings", len(meetings)).
		Int("posts", len(posts)).
		Msg("Seeded demo data")
}
