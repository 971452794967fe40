package dashboard

import (
	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/feedback"
	"github.com/heartmarshall/agewell-backend/internal/service/finance"
	"github.com/heartmarshall/agewell-backend/internal/service/medicine"
)

// Dashboard is the caller's home screen. Exactly one view is set, matching
// Role.
type Dashboard struct {
	Role      domain.UserRole
	User      domain.UserSummary
	Elder     *ElderView
	Caregiver *CaregiverView
	Admin     *AdminView
}

// ElderView is what an elder sees first.
type ElderView struct {
	EmergencyContact *domain.EmergencyContact
	DueMedicines     []domain.ScheduleEntry
	Reminders        []domain.Reminder
	UpcomingBills    []domain.FixedExpense
}

// CaregiverView shows the linked elder's day. When Linked is false no other
// field is set.
type CaregiverView struct {
	Linked        bool
	Elder         *domain.UserSummary
	Events        []domain.Event
	Medicines     *medicine.TodayResult
	Reminders     []domain.Reminder
	Finance       *finance.CaregiverSummary
	EmergencyLogs []domain.EmergencyLog
}

// AdminStats are system-wide totals.
type AdminStats struct {
	Users           int
	Medicines       int
	Reminders       int
	Events          int
	Feedback        int
	Tutorials       int
	RegularExpenses int
	FixedExpenses   int
	EmergencyLogs   int
	DosesToday      int
	DosesTakenToday int
}

// AdminView is the administrator's overview.
type AdminView struct {
	Stats           AdminStats
	RecentUsers     []domain.User
	RecentFeedback  []feedback.Item
	RecentTutorials []domain.TutorialRequest
	RecentEmergency []domain.EmergencyLog
}
