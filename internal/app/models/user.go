package models

import (
	"time"
)

// User defines a team member record
type User struct {
	ID           int64     `json:"id" example:"1"`                              // Unique identifier for the user
	Username     string    `json:"username" example:"sophia.chen"`              // Login name, unique across the directory
	Password     string    `json:"-"`                                           // Plaintext demo credential (excluded from JSON)
	Name         string    `json:"name" example:"Sophia Chen"`                  // Display name used in joins and notifications
	Email        string    `json:"email" example:"sophia@teamsync.com"`         // User's email address, unique
	Title        string    `json:"title,omitempty" example:"Data Team Lead"`    // Job title
	Department   string    `json:"department,omitempty" example:"Data Science"` // Department name
	ProfileImage string    `json:"profileImage,omitempty"`                      // URL of the user's avatar
	Skills       []string  `json:"skills,omitempty" example:"Leadership"`       // Ordered list of skill labels
	CreatedAt    time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`    // Timestamp when the user was created
}
