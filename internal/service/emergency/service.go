package emergency

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

type logRepo interface {
	Create(ctx context.Context, l *domain.EmergencyLog) (*domain.EmergencyLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	ListSince(ctx context.Context, userIDs []uuid.UUID, since time.Time, limit int) ([]domain.EmergencyLog, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListCaregivers(ctx context.Context, elderID uuid.UUID) ([]domain.User, error)
}

type recorder interface {
	EmergencyLogsPurged(n int64)
}

// Service records emergency calls, resolves who to call and purges old logs.
type Service struct {
	logs      logRepo
	users     userRepo
	metrics   recorder
	log       *slog.Logger
	retention time.Duration
	now       func() time.Time
}

// NewService creates a new Emergency service.
func NewService(log *slog.Logger, logs logRepo, users userRepo, metrics recorder, retention time.Duration) *Service {
	return &Service{
		logs:      logs,
		users:     users,
		metrics:   metrics,
		log:       log.With("service", "emergency"),
		retention: retention,
		now:       time.Now,
	}
}

// Retention returns the configured lifetime of a log entry.
func (s *Service) Retention() time.Duration { return s.retention }
