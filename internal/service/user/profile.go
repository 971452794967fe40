package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile with linked accounts.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.ProfileFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return p, nil
}

// ProfileFor loads userID and its linked accounts without checking the caller.
func (s *Service) ProfileFor(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &Profile{User: user}
	switch {
	case user.IsCaregiver():
		if elderID, ok := user.LinkedElderID(); ok {
			elder, err := s.users.GetByID(ctx, elderID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			p.Elder = elder
		}
	case user.IsElder():
		caregivers, err := s.users.ListCaregivers(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		p.Caregivers = caregivers
	}
	return p, nil
}

// UpdateProfile updates the authenticated user's profile and, when asked,
// the password. A wrong current password is a validation error.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	updated := *user
	updated.Name = strings.TrimSpace(input.Name)
	updated.Phone = strings.TrimSpace(input.Phone)
	if input.Gender != nil {
		updated.Gender = strings.TrimSpace(*input.Gender)
	}
	if input.Age != nil {
		updated.Age = *input.Age
	}
	if input.MonthlyBudget != nil {
		updated.MonthlyBudget = *input.MonthlyBudget
	}
	if input.EmergencyContact != nil {
		updated.EmergencyContact = strings.TrimSpace(*input.EmergencyContact)
	}

	if input.ChangesPassword() {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
			return nil, domain.NewValidationError("current_password", "incorrect password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile hash password: %w", err)
		}
		updated.PasswordHash = string(hash)
	}

	saved, err := s.users.UpdateProfile(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("password_changed", input.ChangesPassword()),
	)

	return saved, nil
}
