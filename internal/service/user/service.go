package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListCaregivers(ctx context.Context, elderID uuid.UUID) ([]domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error)
}

// Service implements profile and account administration operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	hashCost int
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, passwordHashCost int) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		hashCost: passwordHashCost,
	}
}
