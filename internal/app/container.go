package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/agewell-backend/internal/adapter/postgres"
	emergencyrepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/emergency"
	eventrepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/event"
	expenserepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/expense"
	feedbackrepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/feedback"
	medicinerepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/medicine"
	reminderrepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/reminder"
	schedulerepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/schedule"
	tutorialrepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/tutorial"
	userrepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/user"
	assistantclient "github.com/heartmarshall/agewell-backend/internal/adapter/provider/assistant"
	"github.com/heartmarshall/agewell-backend/internal/auth"
	"github.com/heartmarshall/agewell-backend/internal/config"
	"github.com/heartmarshall/agewell-backend/internal/metrics"
	"github.com/heartmarshall/agewell-backend/internal/provider"
	"github.com/heartmarshall/agewell-backend/internal/service/assistant"
	authsvc "github.com/heartmarshall/agewell-backend/internal/service/auth"
	"github.com/heartmarshall/agewell-backend/internal/service/dashboard"
	"github.com/heartmarshall/agewell-backend/internal/service/emergency"
	"github.com/heartmarshall/agewell-backend/internal/service/event"
	"github.com/heartmarshall/agewell-backend/internal/service/feedback"
	"github.com/heartmarshall/agewell-backend/internal/service/finance"
	"github.com/heartmarshall/agewell-backend/internal/service/medicine"
	"github.com/heartmarshall/agewell-backend/internal/service/reminder"
	"github.com/heartmarshall/agewell-backend/internal/service/tutorial"
	"github.com/heartmarshall/agewell-backend/internal/service/user"
	"github.com/heartmarshall/agewell-backend/internal/transport/dataloader"
	"github.com/heartmarshall/agewell-backend/internal/transport/rest"
)

// container holds the repositories and services of one process.
type container struct {
	cfg *config.Config

	users *userrepo.Repo

	auth      *authsvc.Service
	profiles  *user.Service
	medicines *medicine.Service
	emergency *emergency.Service
	reminders *reminder.Service
	events    *event.Service
	finance   *finance.Service
	feedback  *feedback.Service
	tutorials *tutorial.Service
	dashboard *dashboard.Service
	assistant *assistant.Service
	llm       *assistantclient.Client
}

func newContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, m *metrics.Metrics) *container {
	loc := cfg.App.Location
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	medicines := medicinerepo.New(pool)
	schedule := schedulerepo.New(pool)
	emergencyLogs := emergencyrepo.New(pool)
	reminders := reminderrepo.New(pool)
	events := eventrepo.New(pool)
	expenses := expenserepo.New(pool)
	feedbackItems := feedbackrepo.New(pool)
	tutorials := tutorialrepo.New(pool)

	names := dataloader.NewUserNames(users)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	llm := assistantclient.NewClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Timeout, logger)

	c := &container{cfg: cfg, users: users, llm: llm}

	c.auth = authsvc.NewService(logger, users, jwt, cfg.Auth)
	c.profiles = user.NewService(logger, users, cfg.Auth.PasswordHashCost)
	c.medicines = medicine.NewService(logger, medicines, schedule, txm, m, medicine.Config{
		WindowDays: cfg.Schedule.WindowDays,
		Location:   loc,
	})
	c.emergency = emergency.NewService(logger, emergencyLogs, users, m, cfg.Emergency.Retention)
	c.reminders = reminder.NewService(logger, reminders, loc)
	c.events = event.NewService(logger, events, users, names, txm, event.Config{
		MinLeadDays:  cfg.Events.MinLeadDays,
		MaxLeadDays:  cfg.Events.MaxLeadDays,
		EarliestTime: cfg.Events.EarliestTime,
		LatestTime:   cfg.Events.LatestTime,
		Location:     loc,
	})
	c.finance = finance.NewService(logger, expenses, users, loc, cfg.Finance.DueSoonDays)
	c.feedback = feedback.NewService(logger, feedbackItems, names)
	c.tutorials = tutorial.NewService(logger, tutorials, users)
	c.assistant = assistant.NewService(logger, llm, provider.ChatOptions{
		Model:       cfg.Assistant.Model,
		Temperature: cfg.Assistant.Temperature,
		MaxTokens:   cfg.Assistant.MaxTokens,
	})

	c.dashboard = dashboard.NewService(logger, dashboard.Deps{
		Users:     users,
		Emergency: c.emergency,
		Medicines: c.medicines,
		Reminders: c.reminders,
		Finance:   c.finance,
		Events:    c.events,
		Feedback:  c.feedback,
		Tutorials: c.tutorials,
		Schedule:  schedule,
		Counters: dashboard.Counters{
			Users:           users.Count,
			Medicines:       medicines.Count,
			Reminders:       reminders.Count,
			Events:          events.Count,
			Feedback:        feedbackItems.Count,
			Tutorials:       tutorials.Count,
			RegularExpenses: expenses.CountRegular,
			FixedExpenses:   expenses.CountFixed,
			EmergencyLogs:   emergencyLogs.Count,
		},
	}, dashboard.Config{
		ReminderDays:           cfg.Dashboard.ReminderDays,
		BillDays:               cfg.Dashboard.BillDays,
		CaregiverReminderLimit: cfg.Dashboard.CaregiverReminderLimit,
		RecentLimit:            cfg.Dashboard.RecentLimit,
		Location:               loc,
	})

	return c
}

func (c *container) handlers(logger *slog.Logger, pool *pgxpool.Pool) rest.Handlers {
	loc := c.cfg.App.Location
	return rest.Handlers{
		Health:    rest.NewHealthHandler(pool, c.llm, BuildVersion()),
		Auth:      rest.NewAuthHandler(c.auth, logger),
		Profile:   rest.NewProfileHandler(c.profiles, logger),
		Dashboard: rest.NewDashboardHandler(c.dashboard, loc, logger),
		Medicine:  rest.NewMedicineHandler(c.medicines, logger),
		Reminder:  rest.NewReminderHandler(c.reminders, loc, logger),
		Event:     rest.NewEventHandler(c.events, loc, logger),
		Finance:   rest.NewFinanceHandler(c.finance, logger),
		Feedback:  rest.NewFeedbackHandler(c.feedback, logger),
		Tutorial:  rest.NewTutorialHandler(c.tutorials, logger),
		Emergency: rest.NewEmergencyHandler(c.emergency, logger),
		Assistant: rest.NewAssistantHandler(c.assistant, logger),
		Admin:     rest.NewAdminHandler(c.profiles, logger),
	}
}
