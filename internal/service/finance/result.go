package finance

import (
	"time"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// MonthSummary describes the current month's one-time spending.
type MonthSummary struct {
	Expenses        []domain.RegularExpense
	Total           float64
	DailyAverage    float64
	Categories      []CategoryTotal
	HighestCategory string
	MonthlyBudget   float64
	RemainingBudget float64
}

// FixedItem is a bill annotated relative to today.
type FixedItem struct {
	Expense      domain.FixedExpense
	DaysUntilDue int
	IsOverdue    bool
	IsDueSoon    bool
}

// FixedSummary describes the user's recurring bills.
type FixedSummary struct {
	Items           []FixedItem
	MonthlyTotal    float64
	MonthlyAverage  float64
	HighestCategory string
	NextDue         *time.Time
}

// Overview combines both expense kinds for the finance landing page.
type Overview struct {
	RegularTotal      float64
	FixedTotal        float64
	DailyFixedAverage float64
	PaidFixedTotal    float64
	PendingFixedTotal float64
	TotalMonthly      float64
	RecentExpenses    []domain.RegularExpense
	RecentFixed       []domain.FixedExpense
}

// CaregiverSummary is the finance section of the caregiver dashboard.
type CaregiverSummary struct {
	RegularTotal      float64
	PaidFixedTotal    float64
	PendingFixedTotal float64
}
