package user

import "github.com/heartmarshall/agewell-backend/internal/domain"

// Profile is a user together with the accounts linked to it: the elder a
// caregiver looks after, or the caregivers of an elder.
type Profile struct {
	User       *domain.User
	Elder      *domain.User
	Caregivers []domain.User
}

// UserList is a page of users plus the total count.
type UserList struct {
	Users []domain.User
	Total int
}
