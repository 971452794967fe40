package feedback

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// SubmitInput holds a new feedback message.
type SubmitInput struct {
	Type     string
	Rating   *int
	Message  string
	Priority domain.FeedbackPriority
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if i.Rating != nil && (*i.Rating < 1 || *i.Rating > 5) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, medium or high"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetStatusInput moves a feedback item through triage.
type SetStatusInput struct {
	FeedbackID uuid.UUID
	Status     domain.FeedbackStatus
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.FeedbackID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "feedback_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress or resolved"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
