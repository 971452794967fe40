package user

import (
	"strings"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// UpdateProfileInput holds the editable profile fields. Nil pointers leave
// the stored value unchanged. A password change requires CurrentPassword.
type UpdateProfileInput struct {
	Name             string
	Phone            string
	Gender           *string
	Age              *int
	MonthlyBudget    *float64
	EmergencyContact *string

	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangesPassword reports whether the input asks for a new password.
func (i UpdateProfileInput) ChangesPassword() bool {
	return i.NewPassword != "" || i.CurrentPassword != ""
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	phone := strings.TrimSpace(i.Phone)
	if phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	} else if !isDigits(phone) || len(phone) < 10 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must be at least 10 digits"})
	}

	if i.Age != nil && (*i.Age < 0 || *i.Age > 120) {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 0 and 120"})
	}
	if i.MonthlyBudget != nil && *i.MonthlyBudget < 0 {
		errs = append(errs, domain.FieldError{Field: "monthly_budget", Message: "must not be negative"})
	}

	if i.ChangesPassword() {
		if i.CurrentPassword == "" {
			errs = append(errs, domain.FieldError{Field: "current_password", Message: "required to change password"})
		}
		if len(i.NewPassword) < 6 {
			errs = append(errs, domain.FieldError{Field: "new_password", Message: "must be at least 6 characters"})
		} else if i.NewPassword != i.ConfirmPassword {
			errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "passwords do not match"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
