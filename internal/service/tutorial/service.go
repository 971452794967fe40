package tutorial

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

type requestRepo interface {
	Create(ctx context.Context, t *domain.TutorialRequest) (*domain.TutorialRequest, error)
	List(ctx context.Context, userID *uuid.UUID, limit int) ([]domain.TutorialRequest, error)
	Update(ctx context.Context, id uuid.UUID, status domain.TutorialStatus, adminNotes string, at time.Time) (*domain.TutorialRequest, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service handles requests for help learning a topic.
type Service struct {
	requests requestRepo
	users    userRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Tutorial service.
func NewService(log *slog.Logger, requests requestRepo, users userRepo) *Service {
	return &Service{
		requests: requests,
		users:    users,
		log:      log.With("service", "tutorial"),
		now:      time.Now,
	}
}
