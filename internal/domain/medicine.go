package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClockLayout is the 24-hour wall clock format used for times of day.
const ClockLayout = "15:04"

// Medicine is a user's medication with its weekly recurrence rule.
// Times are canonical "HH:MM" strings in ascending order, Days are
// lower-case full English weekday names.
type Medicine struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Dosage    string
	Frequency string
	Times     []string
	Days      []string
	Notes     string
	CreatedAt time.Time
}

// TakesOn reports whether the medicine is scheduled on the given weekday.
// Matching is a case-insensitive comparison of full English names.
func (m *Medicine) TakesOn(w time.Weekday) bool {
	name := w.String()
	for _, d := range m.Days {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// ScheduleEntry is one concrete dated dose of a medicine.
// MedicineName and Dosage are copied when the entry is created and are not
// re-synced afterwards.
type ScheduleEntry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	MedicineID   uuid.UUID
	MedicineName string
	Dosage       string
	Time         string
	ScheduledAt  time.Time
	IsTaken      bool
	TakenAt      *time.Time
	Version      int
	CreatedAt    time.Time
}

// Status returns "taken" or "pending".
func (e *ScheduleEntry) Status() string {
	if e.IsTaken {
		return "taken"
	}
	return "pending"
}

// ParseWeekday resolves a full English weekday name, ignoring case and
// surrounding whitespace. Abbreviations and numbers are not accepted.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, true
		}
	}
	return 0, false
}

// WeekdayName returns the lower-case name used for storage.
func WeekdayName(w time.Weekday) string {
	return strings.ToLower(w.String())
}

// ParseClock parses a 24-hour "HH:MM" string and returns the canonical form
// together with its hour and minute.
func ParseClock(s string) (canonical string, hour, minute int, err error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Format(ClockLayout), t.Hour(), t.Minute(), nil
}

// AtClock combines a calendar day with an "HH:MM" time in the day's location.
func AtClock(day time.Time, clock string) (time.Time, error) {
	_, h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location()), nil
}
