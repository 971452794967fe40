package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Add creates a reminder for the caller.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Reminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	due, err := input.Validate(s.loc)
	if err != nil {
		return nil, err
	}

	created, err := s.reminders.Create(ctx, &domain.Reminder{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		DueAt:       due.UTC(),
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("reminder.Add: %w", err)
	}

	s.log.InfoContext(ctx, "reminder added",
		slog.String("user_id", userID.String()),
		slog.String("reminder_id", created.ID.String()),
	)
	return created, nil
}

// List returns the caller's reminders grouped into soon, later and completed.
// Overdue incomplete reminders are not listed.
func (s *Service) List(ctx context.Context) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := s.today()
	boundary := today.AddDate(0, 0, soonDays+1)

	soon, err := s.reminders.ListPending(ctx, userID, today, boundary, 0)
	if err != nil {
		return nil, fmt.Errorf("reminder.List: %w", err)
	}
	later, err := s.reminders.ListPending(ctx, userID, boundary, time.Time{}, 0)
	if err != nil {
		return nil, fmt.Errorf("reminder.List: %w", err)
	}
	completed, err := s.reminders.ListCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reminder.List: %w", err)
	}

	return &ListResult{Soon: soon, Later: later, Completed: completed}, nil
}

// Complete marks one of the caller's reminders as done. A reminder that is
// missing or already completed yields domain.ErrNotFound.
func (s *Service) Complete(ctx context.Context, input IDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.reminders.Complete(ctx, userID, input.ReminderID, s.now().UTC()); err != nil {
		return fmt.Errorf("reminder.Complete: %w", err)
	}

	s.log.InfoContext(ctx, "reminder completed",
		slog.String("user_id", userID.String()),
		slog.String("reminder_id", input.ReminderID.String()),
	)
	return nil
}

// Delete removes one of the caller's reminders.
func (s *Service) Delete(ctx context.Context, input IDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.reminders.Delete(ctx, userID, input.ReminderID); err != nil {
		return fmt.Errorf("reminder.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "reminder deleted",
		slog.String("user_id", userID.String()),
		slog.String("reminder_id", input.ReminderID.String()),
	)
	return nil
}

// Upcoming returns userID's incomplete reminders due from today through
// today+days inclusive.
func (s *Service) Upcoming(ctx context.Context, userID uuid.UUID, days int) ([]domain.Reminder, error) {
	today := s.today()
	list, err := s.reminders.ListPending(ctx, userID, today, today.AddDate(0, 0, days+1), 0)
	if err != nil {
		return nil, fmt.Errorf("reminder.Upcoming: %w", err)
	}
	return list, nil
}

// Incomplete returns up to limit of userID's incomplete reminders, earliest
// due first, overdue ones included.
func (s *Service) Incomplete(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Reminder, error) {
	list, err := s.reminders.ListPending(ctx, userID, time.Time{}, time.Time{}, limit)
	if err != nil {
		return nil, fmt.Errorf("reminder.Incomplete: %w", err)
	}
	return list, nil
}
