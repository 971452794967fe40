package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// EnsureAdmin creates the configured administrator account if it does not
// exist yet. It is a no-op when no admin email is configured. An existing
// account with that email is left untouched.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(s.cfg.AdminEmail))
	if email == "" {
		return nil
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if !existing.Role.IsAdmin() {
			s.log.WarnContext(ctx, "admin email belongs to a non-admin account",
				slog.String("user_id", existing.ID.String()))
		}
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.EnsureAdmin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.EnsureAdmin hash password: %w", err)
	}

	now := s.now().UTC()
	admin, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         s.cfg.AdminName,
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("auth.EnsureAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin account created", slog.String("user_id", admin.ID.String()))
	return nil
}
