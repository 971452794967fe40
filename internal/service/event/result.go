package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// ParticipantView is a participant with their display name.
type ParticipantView struct {
	UserID   uuid.UUID
	Name     string
	JoinedAt time.Time
}

// Details is an event with its participants, latest joiner first.
type Details struct {
	Event           *domain.Event
	Participants    []ParticipantView
	IsParticipating bool
	IsOrganizer     bool
}
