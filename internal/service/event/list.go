package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// List returns events starting today or later, soonest first.
func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListFrom(ctx, s.today().UTC())
	if err != nil {
		return nil, fmt.Errorf("event.List: %w", err)
	}
	return events, nil
}

// Get returns an event with its named participants.
func (s *Service) Get(ctx context.Context, input IDInput) (*Details, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ev, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("event.Get: %w", err)
	}

	participants, err := s.events.ListParticipants(ctx, ev.ID)
	if err != nil {
		return nil, fmt.Errorf("event.Get: %w", err)
	}

	ids := make([]uuid.UUID, len(participants))
	for i, p := range participants {
		ids[i] = p.UserID
	}
	names, err := s.names.Names(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("event.Get: %w", err)
	}

	details := &Details{
		Event:        ev,
		Participants: make([]ParticipantView, 0, len(participants)),
		IsOrganizer:  ev.OrganizerID == userID,
	}
	for _, p := range participants {
		name, ok := names[p.UserID]
		if !ok {
			continue
		}
		details.Participants = append(details.Participants, ParticipantView{
			UserID:   p.UserID,
			Name:     name,
			JoinedAt: p.JoinedAt,
		})
		if p.UserID == userID {
			details.IsParticipating = true
		}
	}
	return details, nil
}

// ForParticipant returns the events userID has joined, soonest first.
func (s *Service) ForParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Event, error) {
	events, err := s.events.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("event.ForParticipant: %w", err)
	}
	return events, nil
}
