package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Create schedules a new event organised by the caller, who joins it
// automatically. Both writes happen in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	startsAt, err := input.validate(s.cfg, s.today())
	if err != nil {
		return nil, err
	}

	organizer, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("event.Create: %w", err)
	}

	now := s.now().UTC()
	var created *domain.Event
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.events.Create(txCtx, &domain.Event{
			ID:              uuid.New(),
			OrganizerID:     userID,
			OrganizerName:   organizer.Name,
			Name:            strings.TrimSpace(input.Name),
			Description:     strings.TrimSpace(input.Description),
			StartsAt:        startsAt.UTC(),
			Location:        strings.TrimSpace(input.Location),
			MaxParticipants: input.MaxParticipants,
			CreatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		if err := s.events.AddParticipant(txCtx, created.ID, userID, now); err != nil {
			return fmt.Errorf("add organizer: %w", err)
		}
		created.ParticipantCount = 1
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("event.Create: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", created.ID.String()),
		slog.Time("starts_at", created.StartsAt),
	)

	return created, nil
}
