package finance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// recentLimit is how many recent items each overview list shows.
const recentLimit = 5

type expenseRepo interface {
	CreateRegular(ctx context.Context, e *domain.RegularExpense) (*domain.RegularExpense, error)
	ListRegular(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.RegularExpense, error)
	ListRecentRegular(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RegularExpense, error)
	SumRegular(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error)
	DeleteRegular(ctx context.Context, userID, id uuid.UUID) error

	CreateFixed(ctx context.Context, e *domain.FixedExpense) (*domain.FixedExpense, error)
	ListFixed(ctx context.Context, userID uuid.UUID) ([]domain.FixedExpense, error)
	ListUnpaidDue(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.FixedExpense, error)
	ListRecentFixed(ctx context.Context, userID uuid.UUID, limit int) ([]domain.FixedExpense, error)
	SetPaid(ctx context.Context, userID, id uuid.UUID, paid bool, paidAt *time.Time) (*domain.FixedExpense, error)
	DeleteFixed(ctx context.Context, userID, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service tracks household spending: one-time expenses and recurring bills.
type Service struct {
	expenses    expenseRepo
	users       userRepo
	log         *slog.Logger
	loc         *time.Location
	dueSoonDays int
	now         func() time.Time
}

// NewService creates a new Finance service. Calendar math happens in loc.
func NewService(log *slog.Logger, expenses expenseRepo, users userRepo, loc *time.Location, dueSoonDays int) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		expenses:    expenses,
		users:       users,
		log:         log.With("service", "finance"),
		loc:         loc,
		dueSoonDays: dueSoonDays,
		now:         time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.StartOfDay(s.now().In(s.loc))
}

// monthRange returns the current month as [first, next) DATE values.
func (s *Service) monthRange() (from, to time.Time) {
	today := s.today()
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, 0)
}
