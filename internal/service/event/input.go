package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// CreateInput holds the parameters for creating an event.
type CreateInput struct {
	Name            string
	Description     string
	Date            string
	Time            string
	Location        string
	MaxParticipants int
}

// validate checks all fields against cfg and collects all errors. On success
// it returns the start instant.
func (i CreateInput) validate(cfg Config, today time.Time) (time.Time, error) {
	var errs []domain.FieldError

	required := []struct{ field, value string }{
		{"name", i.Name},
		{"description", i.Description},
		{"date", i.Date},
		{"time", i.Time},
		{"location", i.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}
	if i.MaxParticipants < 1 {
		errs = append(errs, domain.FieldError{Field: "max_participants", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return time.Time{}, &domain.ValidationError{Errors: errs}
	}

	day, err := domain.ParseDate(i.Date, cfg.Location)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: err.Error()})
	} else {
		lead := domain.DaysBetween(today, day)
		if lead < cfg.MinLeadDays || lead > cfg.MaxLeadDays {
			errs = append(errs, domain.FieldError{
				Field:   "date",
				Message: fmt.Sprintf("must be %d to %d days from today", cfg.MinLeadDays, cfg.MaxLeadDays),
			})
		}
	}

	clock, _, _, err := domain.ParseClock(i.Time)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "time", Message: err.Error()})
	} else if clock < cfg.EarliestTime || clock > cfg.LatestTime {
		errs = append(errs, domain.FieldError{
			Field:   "time",
			Message: fmt.Sprintf("must be between %s and %s", cfg.EarliestTime, cfg.LatestTime),
		})
	}

	if len(errs) > 0 {
		return time.Time{}, &domain.ValidationError{Errors: errs}
	}
	return domain.AtClock(day, clock)
}

// IDInput identifies an event.
type IDInput struct {
	EventID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i IDInput) Validate() error {
	if i.EventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}
	return nil
}
