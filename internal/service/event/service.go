package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListFrom(ctx context.Context, from time.Time) ([]domain.Event, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddParticipant(ctx context.Context, eventID, userID uuid.UUID, joinedAt time.Time) error
	RemoveParticipant(ctx context.Context, eventID, userID uuid.UUID) error
	ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type nameResolver interface {
	Names(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the scheduling rules for new events.
type Config struct {
	MinLeadDays  int
	MaxLeadDays  int
	EarliestTime string
	LatestTime   string
	Location     *time.Location
}

// Service manages community events and their participants.
type Service struct {
	events eventRepo
	users  userRepo
	names  nameResolver
	tx     txManager
	log    *slog.Logger
	cfg    Config
	now    func() time.Time
}

// NewService creates a new Event service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	users userRepo,
	names nameResolver,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		events: events,
		users:  users,
		names:  names,
		tx:     tx,
		log:    log.With("service", "event"),
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.StartOfDay(s.now().In(s.cfg.Location))
}
