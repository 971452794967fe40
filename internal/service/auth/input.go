package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

const (
	phoneDigits   = 11
	pincodeDigits = 6
	minPassword   = 6
	maxAge        = 120
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Name             string
	Email            string
	Phone            string
	Password         string
	ConfirmPassword  string
	Role             domain.UserRole
	Gender           string
	Age              int
	Street           string
	City             string
	State            string
	Pincode          string
	EmergencyContact string
	ElderEmail       string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Phone = strings.TrimSpace(i.Phone)
	i.Role = domain.UserRole(strings.ToLower(strings.TrimSpace(string(i.Role))))
	i.Gender = strings.TrimSpace(i.Gender)
	i.Street = strings.TrimSpace(i.Street)
	i.City = strings.TrimSpace(i.City)
	i.State = strings.TrimSpace(i.State)
	i.Pincode = strings.TrimSpace(i.Pincode)
	i.EmergencyContact = strings.TrimSpace(i.EmergencyContact)
	i.ElderEmail = strings.ToLower(strings.TrimSpace(i.ElderEmail))
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	required := []struct{ field, value string }{
		{"name", i.Name},
		{"gender", i.Gender},
		{"street", i.Street},
		{"city", i.City},
		{"state", i.State},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if !isDigits(i.Phone) || len(i.Phone) != phoneDigits {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must be exactly 11 digits"})
	}
	if !isDigits(i.Pincode) || len(i.Pincode) != pincodeDigits {
		errs = append(errs, domain.FieldError{Field: "pincode", Message: "must be exactly 6 digits"})
	}
	if i.Age < 0 || i.Age > maxAge {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 0 and 120"})
	}

	if len(i.Password) < minPassword {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	} else if i.Password != i.ConfirmPassword {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "passwords do not match"})
	}

	switch i.Role {
	case domain.UserRoleElder:
	case domain.UserRoleCaregiver:
		if i.ElderEmail == "" {
			errs = append(errs, domain.FieldError{Field: "elder_email", Message: "required for caregivers"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be elder or caregiver"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
