package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegularExpense is a one-time spend.
type RegularExpense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Amount      float64
	Category    string
	Description string
	SpentOn     time.Time
	CreatedAt   time.Time
}

// FixedExpense is a recurring bill with a due date and payment state.
type FixedExpense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Amount      float64
	Category    string
	Frequency   ExpenseFrequency
	Description string
	DueDate     time.Time
	IsPaid      bool
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// MonthlyAmount normalises the bill to a per-month figure.
func (e *FixedExpense) MonthlyAmount() float64 {
	return e.Amount / float64(e.Frequency.MonthsPerCycle())
}
