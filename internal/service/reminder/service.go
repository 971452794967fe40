package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

type reminderRepo interface {
	Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	ListPending(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.Reminder, error)
	ListCompleted(ctx context.Context, userID uuid.UUID) ([]domain.Reminder, error)
	Complete(ctx context.Context, userID, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// soonDays is how many days after today still count as "soon" in List.
const soonDays = 2

// Service manages one-off dated reminders.
type Service struct {
	reminders reminderRepo
	log       *slog.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a new Reminder service. Dates are interpreted in loc.
func NewService(log *slog.Logger, reminders reminderRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		reminders: reminders,
		log:       log.With("service", "reminder"),
		loc:       loc,
		now:       time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.StartOfDay(s.now().In(s.loc))
}
