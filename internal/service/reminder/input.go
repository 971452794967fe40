package reminder

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// AddInput holds the parameters for creating a reminder.
type AddInput struct {
	Title       string
	Description string
	Date        string
	Time        string
}

// Validate checks all fields and collects all errors. On success it returns
// the due instant in loc.
func (i AddInput) Validate(loc *time.Location) (time.Time, error) {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	var day time.Time
	if strings.TrimSpace(i.Date) == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if d, err := domain.ParseDate(i.Date, loc); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: err.Error()})
	} else {
		day = d
	}

	var clock string
	if strings.TrimSpace(i.Time) == "" {
		errs = append(errs, domain.FieldError{Field: "time", Message: "required"})
	} else if c, _, _, err := domain.ParseClock(i.Time); err != nil {
		errs = append(errs, domain.FieldError{Field: "time", Message: err.Error()})
	} else {
		clock = c
	}

	if len(errs) > 0 {
		return time.Time{}, &domain.ValidationError{Errors: errs}
	}

	due, err := domain.AtClock(day, clock)
	if err != nil {
		return time.Time{}, domain.NewValidationError("time", err.Error())
	}
	return due, nil
}

// IDInput identifies one of the caller's reminders.
type IDInput struct {
	ReminderID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i IDInput) Validate() error {
	if i.ReminderID == uuid.Nil {
		return domain.NewValidationError("reminder_id", "required")
	}
	return nil
}
