package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a community gathering organised by a user.
type Event struct {
	ID               uuid.UUID
	OrganizerID      uuid.UUID
	OrganizerName    string
	Name             string
	Description      string
	StartsAt         time.Time
	Location         string
	MaxParticipants  int
	ParticipantCount int
	CreatedAt        time.Time
}

// IsFull reports whether no more participants can join.
func (e *Event) IsFull() bool {
	return e.ParticipantCount >= e.MaxParticipants
}

// Participant is a user's membership in an event.
type Participant struct {
	EventID  uuid.UUID
	UserID   uuid.UUID
	JoinedAt time.Time
}
