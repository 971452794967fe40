package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Item is a feedback entry with the submitter's name.
type Item struct {
	domain.Feedback
	UserName string
}

// Submit stores feedback from the caller. Priority defaults to medium.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Feedback, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.FeedbackPriorityMedium
	}

	created, err := s.feedback.Create(ctx, &domain.Feedback{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      strings.TrimSpace(input.Type),
		Rating:    input.Rating,
		Message:   strings.TrimSpace(input.Message),
		Priority:  priority,
		Status:    domain.FeedbackStatusPending,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("feedback.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "feedback submitted",
		slog.String("user_id", userID.String()),
		slog.String("feedback_id", created.ID.String()),
		slog.String("priority", string(created.Priority)),
	)
	return created, nil
}

// ListAll returns the newest feedback with submitter names. Admin only.
// A limit of zero returns everything.
func (s *Service) ListAll(ctx context.Context, limit int) ([]Item, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	return s.Recent(ctx, limit)
}

// Recent returns the newest feedback with submitter names without an access
// check. The admin dashboard uses it.
func (s *Service) Recent(ctx context.Context, limit int) ([]Item, error) {
	list, err := s.feedback.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("feedback.Recent: %w", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i, f := range list {
		ids[i] = f.UserID
	}
	names, err := s.names.Names(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("feedback.Recent: %w", err)
	}

	items := make([]Item, len(list))
	for i, f := range list {
		name, ok := names[f.UserID]
		if !ok {
			name = unknownUser
		}
		items[i] = Item{Feedback: f, UserName: name}
	}
	return items, nil
}

// SetStatus updates a feedback item's triage status. Admin only.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.Feedback, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.feedback.SetStatus(ctx, input.FeedbackID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("feedback.SetStatus: %w", err)
	}

	s.log.InfoContext(ctx, "feedback status changed",
		slog.String("feedback_id", updated.ID.String()),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

// Delete removes a feedback item. Admin only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if err := s.feedback.Delete(ctx, id); err != nil {
		return fmt.Errorf("feedback.Delete: %w", err)
	}
	return nil
}
