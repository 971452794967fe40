package medicine

import "github.com/heartmarshall/agewell-backend/internal/domain"

// CreateResult is returned by CreateMedicine.
type CreateResult struct {
	Medicine       *domain.Medicine
	ScheduledCount int
}

// TodayResult splits the current day's entries by state.
type TodayResult struct {
	Due   []domain.ScheduleEntry
	Taken []domain.ScheduleEntry
}
