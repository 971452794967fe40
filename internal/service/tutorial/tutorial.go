package tutorial

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Submit files a tutorial request for the caller. The caller's name is
// stored with the request.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.TutorialRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("tutorial.Submit: %w", err)
	}

	now := s.now().UTC()
	created, err := s.requests.Create(ctx, &domain.TutorialRequest{
		ID:              uuid.New(),
		UserID:          userID,
		UserName:        user.Name,
		Topic:           strings.TrimSpace(input.Topic),
		Category:        strings.TrimSpace(input.Category),
		Description:     strings.TrimSpace(input.Description),
		Difficulty:      strings.TrimSpace(input.Difficulty),
		Platform:        strings.TrimSpace(input.Platform),
		AdditionalNotes: strings.TrimSpace(input.AdditionalNotes),
		Status:          domain.TutorialStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("tutorial.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "tutorial requested",
		slog.String("user_id", userID.String()),
		slog.String("request_id", created.ID.String()),
		slog.String("topic", created.Topic),
	)
	return created, nil
}

// ListMine returns the caller's requests, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.TutorialRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.requests.List(ctx, &userID, 0)
	if err != nil {
		return nil, fmt.Errorf("tutorial.ListMine: %w", err)
	}
	return list, nil
}

// ListAll returns every request, newest first. Admin only.
func (s *Service) ListAll(ctx context.Context, limit int) ([]domain.TutorialRequest, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	return s.Recent(ctx, limit)
}

// Recent returns the newest requests without an access check.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.TutorialRequest, error) {
	list, err := s.requests.List(ctx, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("tutorial.Recent: %w", err)
	}
	return list, nil
}

// Update records an admin's status and notes on a request. Admin only.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.TutorialRequest, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.requests.Update(ctx, input.RequestID, input.Status, strings.TrimSpace(input.AdminNotes), s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("tutorial.Update: %w", err)
	}

	s.log.InfoContext(ctx, "tutorial request updated",
		slog.String("request_id", updated.ID.String()),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}
