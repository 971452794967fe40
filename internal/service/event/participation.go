package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Join adds the caller to an event. The event row is locked while the
// capacity is checked, so concurrent joins cannot overfill it. A full event
// yields domain.ErrConflict; joining twice yields domain.ErrAlreadyExists.
func (s *Service) Join(ctx context.Context, input IDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ev, err := s.events.GetForUpdate(txCtx, input.EventID)
		if err != nil {
			return err
		}
		if ev.IsFull() {
			return fmt.Errorf("event is full: %w", domain.ErrConflict)
		}
		return s.events.AddParticipant(txCtx, ev.ID, userID, s.now().UTC())
	})
	if err != nil {
		return fmt.Errorf("event.Join: %w", err)
	}

	s.log.InfoContext(ctx, "event joined",
		slog.String("user_id", userID.String()),
		slog.String("event_id", input.EventID.String()),
	)
	return nil
}

// Leave removes the caller from an event. The organizer cannot leave.
func (s *Service) Leave(ctx context.Context, input IDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	ev, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return fmt.Errorf("event.Leave: %w", err)
	}
	if ev.OrganizerID == userID {
		return fmt.Errorf("event.Leave: organizer cannot leave, delete the event instead: %w", domain.ErrForbidden)
	}

	if err := s.events.RemoveParticipant(ctx, ev.ID, userID); err != nil {
		return fmt.Errorf("event.Leave: %w", err)
	}

	s.log.InfoContext(ctx, "event left",
		slog.String("user_id", userID.String()),
		slog.String("event_id", ev.ID.String()),
	)
	return nil
}

// Delete removes an event. Only its organizer may do so.
func (s *Service) Delete(ctx context.Context, input IDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	ev, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return fmt.Errorf("event.Delete: %w", err)
	}
	if ev.OrganizerID != userID {
		return fmt.Errorf("event.Delete: only the organizer can delete an event: %w", domain.ErrForbidden)
	}

	if err := s.events.Delete(ctx, ev.ID); err != nil {
		return fmt.Errorf("event.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID.String()),
		slog.String("event_id", ev.ID.String()),
	)
	return nil
}
