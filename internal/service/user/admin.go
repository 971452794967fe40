package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// ListUsers returns a paginated list of all users (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) (*UserList, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers count: %w", err)
	}

	return &UserList{Users: users, Total: total}, nil
}

// UserDetails returns any user with linked accounts (admin only).
func (s *Service) UserDetails(ctx context.Context, id uuid.UUID) (*Profile, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	p, err := s.ProfileFor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.UserDetails: %w", err)
	}
	return p, nil
}
