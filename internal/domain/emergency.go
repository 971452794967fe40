package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyLog records that a user placed an emergency call.
// Logs are transient and purged after the retention window.
type EmergencyLog struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	UserName            string
	ContactType         string
	PhoneNumber         string
	LinkedCaregiverID   *uuid.UUID
	LinkedCaregiverName *string
	CreatedAt           time.Time
}

// EmergencyContact is the number an elder should call first.
type EmergencyContact struct {
	Name  string      `json:"name"`
	Phone string      `json:"phone"`
	Type  ContactType `json:"type"`
}
