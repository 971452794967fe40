package medicine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// MarkTaken sets or clears the taken state of one of the caller's entries and
// bumps its version. A stale ExpectedVersion yields domain.ErrConflict; an
// entry that does not exist for the caller yields domain.ErrNotFound.
func (s *Service) MarkTaken(ctx context.Context, input MarkTakenInput) (*domain.ScheduleEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var takenAt *time.Time
	if input.Taken {
		now := s.now().UTC()
		takenAt = &now
	}

	entry, err := s.schedule.SetTaken(ctx, userID, input.EntryID, input.Taken, takenAt, input.ExpectedVersion)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) && input.ExpectedVersion != nil {
			return nil, s.explainMiss(ctx, input)
		}
		return nil, fmt.Errorf("medicine.MarkTaken: %w", err)
	}

	s.metrics.DoseMarked(input.Taken)

	s.log.InfoContext(ctx, "schedule entry marked",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Bool("taken", entry.IsTaken),
		slog.Int("version", entry.Version),
	)

	return entry, nil
}

// explainMiss tells a stale version apart from a missing entry after a
// versioned update matched nothing.
func (s *Service) explainMiss(ctx context.Context, input MarkTakenInput) error {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	current, err := s.schedule.GetByID(ctx, userID, input.EntryID)
	if err != nil {
		return fmt.Errorf("medicine.MarkTaken: %w", err)
	}
	return fmt.Errorf("medicine.MarkTaken: entry %s is at version %d, not %d: %w",
		input.EntryID, current.Version, *input.ExpectedVersion, domain.ErrConflict)
}
