package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a one-off dated note. DueAt combines the due date and time.
type Reminder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	DueAt       time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}
