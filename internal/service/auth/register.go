package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// Register creates a new elder or caregiver account and returns a token for it.
// A caregiver is linked to the elder named by ElderEmail, which must exist.
// Returns ErrAlreadyExists if the email is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var elderID *uuid.UUID
	if input.Role == domain.UserRoleCaregiver {
		elder, err := s.users.GetByEmail(ctx, input.ElderEmail)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Register find elder: %w", err)
		}
		if elder == nil || !elder.IsElder() {
			return nil, domain.NewValidationError("elder_email", "no elder account with this email")
		}
		elderID = &elder.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	now := s.now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         input.Role,
		Gender:       input.Gender,
		Age:          input.Age,
		ElderID:      elderID,
		Address: domain.Address{
			Street:  input.Street,
			City:    input.City,
			State:   input.State,
			Pincode: input.Pincode,
		},
		EmergencyContact: input.EmergencyContact,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return result, nil
}
