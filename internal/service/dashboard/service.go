package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/feedback"
	"github.com/heartmarshall/agewell-backend/internal/service/finance"
	"github.com/heartmarshall/agewell-backend/internal/service/medicine"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type emergencyService interface {
	PurgeQuietly(ctx context.Context)
	ContactFor(ctx context.Context, userID uuid.UUID) (*domain.EmergencyContact, error)
	RecentForUsers(ctx context.Context, userIDs []uuid.UUID, limit int) ([]domain.EmergencyLog, error)
}

type medicineService interface {
	DueTodayFor(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleEntry, error)
	TodayFor(ctx context.Context, userID uuid.UUID) (*medicine.TodayResult, error)
}

type reminderService interface {
	Upcoming(ctx context.Context, userID uuid.UUID, days int) ([]domain.Reminder, error)
	Incomplete(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Reminder, error)
}

type financeService interface {
	UpcomingBills(ctx context.Context, userID uuid.UUID, days int) ([]domain.FixedExpense, error)
	CaregiverSummary(ctx context.Context, elderID uuid.UUID) (*finance.CaregiverSummary, error)
}

type eventService interface {
	ForParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Event, error)
}

type feedbackService interface {
	Recent(ctx context.Context, limit int) ([]feedback.Item, error)
}

type tutorialService interface {
	Recent(ctx context.Context, limit int) ([]domain.TutorialRequest, error)
}

type scheduleCounter interface {
	CountBetween(ctx context.Context, from, to time.Time) (total, taken int, err error)
}

// CountFunc returns the number of stored rows of one entity.
type CountFunc func(ctx context.Context) (int, error)

// Counters supplies the per-entity totals shown to admins.
type Counters struct {
	Users           CountFunc
	Medicines       CountFunc
	Reminders       CountFunc
	Events          CountFunc
	Feedback        CountFunc
	Tutorials       CountFunc
	RegularExpenses CountFunc
	FixedExpenses   CountFunc
	EmergencyLogs   CountFunc
}

// Config holds the dashboard look-ahead windows and list sizes.
type Config struct {
	ReminderDays           int
	BillDays               int
	CaregiverReminderLimit int
	RecentLimit            int
	Location               *time.Location
}

// Deps groups the services a dashboard reads from.
type Deps struct {
	Users     userRepo
	Emergency emergencyService
	Medicines medicineService
	Reminders reminderService
	Finance   financeService
	Events    eventService
	Feedback  feedbackService
	Tutorials tutorialService
	Schedule  scheduleCounter
	Counters  Counters
}

// Service assembles the role-specific home screen.
type Service struct {
	users     userRepo
	emergency emergencyService
	medicines medicineService
	reminders reminderService
	finance   financeService
	events    eventService
	feedback  feedbackService
	tutorials tutorialService
	schedule  scheduleCounter
	counters  Counters
	log       *slog.Logger
	cfg       Config
	now       func() time.Time
}

// NewService creates a new Dashboard service.
func NewService(log *slog.Logger, deps Deps, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		users:     deps.Users,
		emergency: deps.Emergency,
		medicines: deps.Medicines,
		reminders: deps.Reminders,
		finance:   deps.Finance,
		events:    deps.Events,
		feedback:  deps.Feedback,
		tutorials: deps.Tutorials,
		schedule:  deps.Schedule,
		counters:  deps.Counters,
		log:       log.With("service", "dashboard"),
		cfg:       cfg,
		now:       time.Now,
	}
}
