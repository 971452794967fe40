package emergency

import (
	"strings"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// LogCallInput holds the parameters for recording an emergency call.
type LogCallInput struct {
	ContactType string
	PhoneNumber string
}

// Validate checks all fields and collects all errors.
func (i LogCallInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.ContactType) == "" {
		errs = append(errs, domain.FieldError{Field: "contact_type", Message: "required"})
	}
	if strings.TrimSpace(i.PhoneNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "phone_number", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
