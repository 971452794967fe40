package reminder

import "github.com/heartmarshall/agewell-backend/internal/domain"

// ListResult groups the caller's reminders for the reminders page.
type ListResult struct {
	// Soon holds incomplete reminders due from today through two days ahead.
	Soon []domain.Reminder
	// Later holds incomplete reminders due after that.
	Later     []domain.Reminder
	Completed []domain.Reminder
}
