package feedback

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// unknownUser is shown when the submitter no longer exists.
const unknownUser = "Unknown user"

type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context, limit int) ([]domain.Feedback, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.FeedbackStatus) (*domain.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type nameResolver interface {
	Names(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// Service collects user feedback and lets admins triage it.
type Service struct {
	feedback feedbackRepo
	names    nameResolver
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Feedback service.
func NewService(log *slog.Logger, feedback feedbackRepo, names nameResolver) *Service {
	return &Service{
		feedback: feedback,
		names:    names,
		log:      log.With("service", "feedback"),
		now:      time.Now,
	}
}
