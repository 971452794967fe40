package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/dashboard"
)

type dashboardService interface {
	Get(ctx context.Context) (*dashboard.Dashboard, error)
}

// DashboardHandler serves the role-specific home screen.
type DashboardHandler struct {
	svc dashboardService
	loc *time.Location
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, loc *time.Location, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, loc: loc, log: logger.With("handler", "dashboard")}
}

type elderDashboardResponse struct {
	EmergencyContact *domain.EmergencyContact `json:"emergency_contact"`
	DueMedicines     []scheduleEntryResponse  `json:"due_medicines"`
	Reminders        []reminderResponse       `json:"reminders"`
	UpcomingBills    []fixedExpenseResponse   `json:"upcoming_bills"`
}

type caregiverFinanceResponse struct {
	RegularTotal      float64 `json:"regular_total"`
	PaidFixedTotal    float64 `json:"paid_fixed_total"`
	PendingFixedTotal float64 `json:"pending_fixed_total"`
}

type caregiverDashboardResponse struct {
	Linked        bool                      `json:"linked"`
	Elder         *domain.UserSummary       `json:"elder,omitempty"`
	Events        []eventResponse           `json:"events,omitempty"`
	Medicines     *todayResponse            `json:"medicines,omitempty"`
	Reminders     []reminderResponse        `json:"reminders,omitempty"`
	Finance       *caregiverFinanceResponse `json:"finance,omitempty"`
	EmergencyLogs []emergencyLogResponse    `json:"emergency_logs,omitempty"`
}

type adminStatsResponse struct {
	Users           int `json:"users"`
	Medicines       int `json:"medicines"`
	Reminders       int `json:"reminders"`
	Events          int `json:"events"`
	Feedback        int `json:"feedback"`
	Tutorials       int `json:"tutorials"`
	RegularExpenses int `json:"regular_expenses"`
	FixedExpenses   int `json:"fixed_expenses"`
	EmergencyLogs   int `json:"emergency_logs"`
	DosesToday      int `json:"doses_today"`
	DosesTakenToday int `json:"doses_taken_today"`
}

type adminDashboardResponse struct {
	Stats           adminStatsResponse     `json:"stats"`
	RecentUsers     []userResponse         `json:"recent_users"`
	RecentFeedback  []feedbackResponse     `json:"recent_feedback"`
	RecentTutorials []tutorialResponse     `json:"recent_tutorials"`
	RecentEmergency []emergencyLogResponse `json:"recent_emergency"`
}

type dashboardResponse struct {
	Role      string                      `json:"role"`
	User      domain.UserSummary          `json:"user"`
	Elder     *elderDashboardResponse     `json:"elder,omitempty"`
	Caregiver *caregiverDashboardResponse `json:"caregiver,omitempty"`
	Admin     *adminDashboardResponse     `json:"admin,omitempty"`
}

// Get returns the dashboard matching the caller's role.
//
//	@Summary	Dashboard
//	@Tags		dashboard
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dashboardResponse
//	@Router		/api/v1/dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := dashboardResponse{Role: string(d.Role), User: d.User}
	switch {
	case d.Elder != nil:
		resp.Elder = h.elder(d.Elder)
	case d.Caregiver != nil:
		resp.Caregiver = h.caregiver(d.Caregiver)
	case d.Admin != nil:
		resp.Admin = h.admin(d.Admin)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DashboardHandler) elder(v *dashboard.ElderView) *elderDashboardResponse {
	return &elderDashboardResponse{
		EmergencyContact: v.EmergencyContact,
		DueMedicines:     toScheduleEntryResponses(v.DueMedicines),
		Reminders:        toReminderResponses(v.Reminders, h.loc),
		UpcomingBills:    toFixedExpenseResponses(v.UpcomingBills),
	}
}

func (h *DashboardHandler) caregiver(v *dashboard.CaregiverView) *caregiverDashboardResponse {
	if !v.Linked {
		return &caregiverDashboardResponse{Linked: false}
	}
	resp := &caregiverDashboardResponse{
		Linked:        true,
		Elder:         v.Elder,
		Events:        toEventResponses(v.Events, h.loc),
		Medicines:     toTodayResponse(v.Medicines),
		Reminders:     toReminderResponses(v.Reminders, h.loc),
		EmergencyLogs: toEmergencyLogResponses(v.EmergencyLogs),
	}
	if v.Finance != nil {
		resp.Finance = &caregiverFinanceResponse{
			RegularTotal:      v.Finance.RegularTotal,
			PaidFixedTotal:    v.Finance.PaidFixedTotal,
			PendingFixedTotal: v.Finance.PendingFixedTotal,
		}
	}
	return resp
}

func (h *DashboardHandler) admin(v *dashboard.AdminView) *adminDashboardResponse {
	s := v.Stats
	fb := make([]feedbackResponse, 0, len(v.RecentFeedback))
	for i := range v.RecentFeedback {
		fb = append(fb, toFeedbackResponse(&v.RecentFeedback[i].Feedback, v.RecentFeedback[i].UserName))
	}
	return &adminDashboardResponse{
		Stats: adminStatsResponse{
			Users:           s.Users,
			Medicines:       s.Medicines,
			Reminders:       s.Reminders,
			Events:          s.Events,
			Feedback:        s.Feedback,
			Tutorials:       s.Tutorials,
			RegularExpenses: s.RegularExpenses,
			FixedExpenses:   s.FixedExpenses,
			EmergencyLogs:   s.EmergencyLogs,
			DosesToday:      s.DosesToday,
			DosesTakenToday: s.DosesTakenToday,
		},
		RecentUsers:     toUserResponses(v.RecentUsers),
		RecentFeedback:  fb,
		RecentTutorials: toTutorialResponses(v.RecentTutorials),
		RecentEmergency: toEmergencyLogResponses(v.RecentEmergency),
	}
}
