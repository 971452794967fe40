package tutorial

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// SubmitInput holds a new tutorial request.
type SubmitInput struct {
	Topic           string
	Category        string
	Description     string
	Difficulty      string
	Platform        string
	AdditionalNotes string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Topic) == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput is an admin's response to a request.
type UpdateInput struct {
	RequestID  uuid.UUID
	Status     domain.TutorialStatus
	AdminNotes string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress, completed or rejected"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
