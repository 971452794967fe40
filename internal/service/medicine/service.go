package medicine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

type medicineRepo interface {
	Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Medicine, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Medicine, error)
	ListPage(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Medicine, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type scheduleRepo interface {
	InsertBatch(ctx context.Context, entries []domain.ScheduleEntry) (int64, error)
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, taken *bool) ([]domain.ScheduleEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.ScheduleEntry, error)
	SetTaken(ctx context.Context, userID, id uuid.UUID, taken bool, takenAt *time.Time, expectedVersion *int) (*domain.ScheduleEntry, error)
	DeleteByMedicine(ctx context.Context, userID, medicineID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	ScheduleEntriesGenerated(source string, n int64)
	DoseMarked(taken bool)
}

// Config holds the scheduling settings the service needs.
type Config struct {
	WindowDays int
	Location   *time.Location
}

// Service implements medicine scheduling and adherence tracking.
type Service struct {
	medicines medicineRepo
	schedule  scheduleRepo
	tx        txManager
	metrics   recorder
	log       *slog.Logger
	cfg       Config
	now       func() time.Time
}

// NewService creates a new Medicine service.
func NewService(
	log *slog.Logger,
	medicines medicineRepo,
	schedule scheduleRepo,
	tx txManager,
	metrics recorder,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		medicines: medicines,
		schedule:  schedule,
		tx:        tx,
		metrics:   metrics,
		log:       log.With("service", "medicine"),
		cfg:       cfg,
		now:       time.Now,
	}
}

// today returns the bounds [start of today, start of tomorrow) in the
// configured location.
func (s *Service) today() (time.Time, time.Time) {
	return dayBounds(s.now().In(s.cfg.Location))
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
