package medicine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// CreateMedicineInput holds the parameters for creating a medicine.
type CreateMedicineInput struct {
	Name      string
	Dosage    string
	Frequency string
	Times     []string
	Days      []string
	Notes     string
}

// Validate checks all fields and collects all errors.
func (i CreateMedicineInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(strings.TrimSpace(i.Dosage)) > 200 {
		errs = append(errs, domain.FieldError{Field: "dosage", Message: "max 200 characters"})
	}
	if len(i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(nonBlank(i.Times)) == 0 {
		errs = append(errs, domain.FieldError{Field: "times", Message: "at least one time required"})
	}
	for _, t := range nonBlank(i.Times) {
		if _, _, _, err := domain.ParseClock(t); err != nil {
			errs = append(errs, domain.FieldError{Field: "times", Message: fmt.Sprintf("invalid time %q, expected HH:MM", t)})
		}
	}

	if len(nonBlank(i.Days)) == 0 {
		errs = append(errs, domain.FieldError{Field: "days", Message: "at least one day required"})
	}
	for _, d := range nonBlank(i.Days) {
		if _, ok := domain.ParseWeekday(d); !ok {
			errs = append(errs, domain.FieldError{Field: "days", Message: fmt.Sprintf("unknown weekday %q", d)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizeTimes returns canonical HH:MM values, de-duplicated and sorted.
// Call after Validate.
func normalizeTimes(times []string) []string {
	seen := make(map[string]bool, len(times))
	out := make([]string, 0, len(times))
	for _, t := range nonBlank(times) {
		canonical, _, _, err := domain.ParseClock(t)
		if err != nil || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	sort.Strings(out)
	return out
}

// normalizeDays returns lower-case weekday names, de-duplicated and in
// Sunday-first week order. Call after Validate.
func normalizeDays(days []string) []string {
	var set [7]bool
	for _, d := range days {
		if w, ok := domain.ParseWeekday(d); ok {
			set[w] = true
		}
	}
	out := make([]string, 0, 7)
	for w := time.Sunday; w <= time.Saturday; w++ {
		if set[w] {
			out = append(out, domain.WeekdayName(w))
		}
	}
	return out
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// DeleteMedicineInput holds the parameters for deleting a medicine.
type DeleteMedicineInput struct {
	MedicineID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteMedicineInput) Validate() error {
	if i.MedicineID == uuid.Nil {
		return domain.NewValidationError("medicine_id", "required")
	}
	return nil
}

// MarkTakenInput holds the parameters for toggling a schedule entry.
// ExpectedVersion enables the optimistic concurrency check; without it the
// last write wins.
type MarkTakenInput struct {
	EntryID         uuid.UUID
	Taken           bool
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i MarkTakenInput) Validate() error {
	var errs []domain.FieldError
	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
