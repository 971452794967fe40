package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a message from a user to the administrators.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Rating    *int
	Message   string
	Priority  FeedbackPriority
	Status    FeedbackStatus
	CreatedAt time.Time
}

// TutorialRequest asks administrators for help learning a topic.
type TutorialRequest struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	UserName        string
	Topic           string
	Category        string
	Description     string
	Difficulty      string
	Platform        string
	AdditionalNotes string
	Status          TutorialStatus
	AdminNotes      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
