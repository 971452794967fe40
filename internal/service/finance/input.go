package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// AddExpenseInput holds the parameters for recording a one-time expense.
type AddExpenseInput struct {
	Name        string
	Amount      float64
	Category    string
	Description string
	Date        string
}

// Validate checks all fields and collects all errors. On success it returns
// the spend date.
func (i AddExpenseInput) Validate(loc *time.Location) (time.Time, error) {
	var errs []domain.FieldError
	errs = appendCommon(errs, i.Name, i.Amount, i.Category)

	spent, errs := parseDate(errs, i.Date, loc)

	if len(errs) > 0 {
		return time.Time{}, &domain.ValidationError{Errors: errs}
	}
	return spent, nil
}

// AddFixedInput holds the parameters for recording a recurring bill.
type AddFixedInput struct {
	Name        string
	Amount      float64
	Category    string
	Frequency   domain.ExpenseFrequency
	Description string
	DueDate     string
}

// Validate checks all fields and collects all errors. On success it returns
// the due date.
func (i AddFixedInput) Validate(loc *time.Location) (time.Time, error) {
	var errs []domain.FieldError
	errs = appendCommon(errs, i.Name, i.Amount, i.Category)

	if !i.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be monthly, quarterly or yearly"})
	}

	due, errs := parseDate(errs, i.DueDate, loc)

	if len(errs) > 0 {
		return time.Time{}, &domain.ValidationError{Errors: errs}
	}
	return due, nil
}

// SetPaidInput toggles the payment state of a bill.
type SetPaidInput struct {
	ExpenseID uuid.UUID
	Paid      bool
}

// Validate checks all fields and collects all errors.
func (i SetPaidInput) Validate() error {
	if i.ExpenseID == uuid.Nil {
		return domain.NewValidationError("expense_id", "required")
	}
	return nil
}

// IDInput identifies an expense of either kind.
type IDInput struct {
	ExpenseID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i IDInput) Validate() error {
	if i.ExpenseID == uuid.Nil {
		return domain.NewValidationError("expense_id", "required")
	}
	return nil
}

func appendCommon(errs []domain.FieldError, name string, amount float64, category string) []domain.FieldError {
	if strings.TrimSpace(name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if strings.TrimSpace(category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	return errs
}

func parseDate(errs []domain.FieldError, s string, loc *time.Location) (time.Time, []domain.FieldError) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	d, err := domain.ParseDate(s, loc)
	if err != nil {
		return time.Time{}, append(errs, domain.FieldError{Field: "date", Message: err.Error()})
	}
	return d, errs
}
