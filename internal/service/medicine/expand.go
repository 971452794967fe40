package medicine

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// Expand materialises the medicine's weekly rule into dated entries for
// windowDays calendar days starting at start's date, in start's location.
// Entries come out in ascending date then time order. Times that fail to
// parse are skipped; the medicine is expected to be normalised already.
func Expand(m domain.Medicine, windowDays int, start time.Time) []domain.ScheduleEntry {
	if windowDays <= 0 || len(m.Times) == 0 || len(m.Days) == 0 {
		return nil
	}

	y, mo, d := start.Date()
	loc := start.Location()
	createdAt := start.UTC()

	var entries []domain.ScheduleEntry
	for i := 0; i < windowDays; i++ {
		day := time.Date(y, mo, d+i, 0, 0, 0, 0, loc)
		if !m.TakesOn(day.Weekday()) {
			continue
		}
		for _, clock := range m.Times {
			at, err := domain.AtClock(day, clock)
			if err != nil {
				continue
			}
			entries = append(entries, domain.ScheduleEntry{
				ID:           uuid.New(),
				UserID:       m.UserID,
				MedicineID:   m.ID,
				MedicineName: m.Name,
				Dosage:       m.Dosage,
				Time:         clock,
				ScheduledAt:  at,
				Version:      1,
				CreatedAt:    createdAt,
			})
		}
	}
	return entries
}
