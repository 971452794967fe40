package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address is the postal address captured at registration.
type Address struct {
	Street  string
	City    string
	State   string
	Pincode string
}

// User represents an authenticated application user.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	Phone            string
	PasswordHash     string
	Role             UserRole
	Gender           string
	Age              int
	ElderID          *uuid.UUID
	Address          Address
	EmergencyContact string
	MonthlyBudget    float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsElder reports whether the user is an elder account.
func (u *User) IsElder() bool { return u.Role == UserRoleElder }

// IsCaregiver reports whether the user is a caregiver account.
func (u *User) IsCaregiver() bool { return u.Role == UserRoleCaregiver }

// LinkedElderID returns the elder a caregiver looks after.
func (u *User) LinkedElderID() (uuid.UUID, bool) {
	if u.Role != UserRoleCaregiver || u.ElderID == nil || *u.ElderID == uuid.Nil {
		return uuid.Nil, false
	}
	return *u.ElderID, true
}

// UserSummary is the public projection of a user shown to other users.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone,omitempty"`
	Role  UserRole  `json:"role"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role}
}
