package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/heartmarshall/agewell-backend/internal/config"
	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/transport/dataloader"
	"github.com/heartmarshall/agewell-backend/internal/transport/middleware"
	_ "github.com/heartmarshall/agewell-backend/internal/transport/rest/docs" // swagger spec
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

type userBatchRepo interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type metricsExporter interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Dashboard *DashboardHandler
	Medicine  *MedicineHandler
	Reminder  *ReminderHandler
	Event     *EventHandler
	Finance   *FinanceHandler
	Feedback  *FeedbackHandler
	Tutorial  *TutorialHandler
	Emergency *EmergencyHandler
	Assistant *AssistantHandler
	Admin     *AdminHandler
}

// RouterDeps holds what NewRouter needs besides the handlers.
type RouterDeps struct {
	Logger      *slog.Logger
	Tokens      tokenValidator
	Users       userBatchRepo
	Metrics     metricsExporter
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	MetricsCfg  config.MetricsConfig
	Swagger     bool
	AuthPerMin  int
}

// NewRouter builds the HTTP handler tree.
//
//	@title						AgeWell API
//	@version					1.0
//	@description				Household coordination for elders and their caregivers.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Auth(deps.Tokens))
	r.Use(dataloader.Middleware(deps.Users))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	if deps.MetricsCfg.Enabled && deps.Metrics != nil {
		r.Method(http.MethodGet, deps.MetricsCfg.Path, deps.Metrics.Handler())
	}
	if deps.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.Route("/auth", func(r chi.Router) {
		if deps.RateLimiter != nil && deps.AuthPerMin > 0 {
			r.Use(deps.RateLimiter.Limit(deps.AuthPerMin))
		}
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/profile", h.Profile.Get)
		r.Put("/profile", h.Profile.Update)
		r.Get("/dashboard", h.Dashboard.Get)

		r.Route("/medicines", func(r chi.Router) {
			r.Get("/", h.Medicine.List)
			r.Post("/", h.Medicine.Create)
			r.Get("/today", h.Medicine.Today)
			r.Delete("/{id}", h.Medicine.Delete)
		})
		r.Post("/schedule/{id}/taken", h.Medicine.MarkTaken)

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", h.Reminder.List)
			r.Post("/", h.Reminder.Add)
			r.Post("/{id}/complete", h.Reminder.Complete)
			r.Delete("/{id}", h.Reminder.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Event.List)
			r.Post("/", h.Event.Create)
			r.Get("/{id}", h.Event.Get)
			r.Delete("/{id}", h.Event.Delete)
			r.Post("/{id}/join", h.Event.Join)
			r.Post("/{id}/leave", h.Event.Leave)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Get("/", h.Finance.Overview)
			r.Get("/expenses", h.Finance.Expenses)
			r.Post("/expenses", h.Finance.AddExpense)
			r.Delete("/expenses/{id}", h.Finance.DeleteExpense)
			r.Get("/fixed", h.Finance.Fixed)
			r.Post("/fixed", h.Finance.AddFixed)
			r.Post("/fixed/{id}/payment", h.Finance.SetPaid)
			r.Delete("/fixed/{id}", h.Finance.DeleteFixed)
		})

		r.Post("/feedback", h.Feedback.Submit)
		r.Get("/tutorials", h.Tutorial.Mine)
		r.Post("/tutorials", h.Tutorial.Submit)

		r.Get("/emergency/contact", h.Emergency.Contact)
		r.Post("/emergency/logs", h.Emergency.LogCall)

		r.Post("/assistant/chat", h.Assistant.Chat)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly)

			r.Get("/users", h.Admin.Users)
			r.Get("/users/{id}", h.Admin.User)
			r.Get("/feedback", h.Feedback.List)
			r.Patch("/feedback/{id}", h.Feedback.SetStatus)
			r.Delete("/feedback/{id}", h.Feedback.Delete)
			r.Get("/tutorials", h.Tutorial.List)
			r.Patch("/tutorials/{id}", h.Tutorial.Update)
		})
	})

	return r
}
