package medicine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/metrics"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// ListMedicines returns the caller's medicines sorted by name.
func (s *Service) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.medicines.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	return list, nil
}

// ListDueToday returns the caller's untaken entries for today, earliest first.
func (s *Service) ListDueToday(ctx context.Context) ([]domain.ScheduleEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.DueTodayFor(ctx, userID)
}

// ListTakenToday returns the caller's taken entries for today.
func (s *Service) ListTakenToday(ctx context.Context) ([]domain.ScheduleEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	start, end := s.today()
	if err := s.ensureDay(ctx, userID, start); err != nil {
		return nil, err
	}
	taken := true
	return s.listBetween(ctx, userID, start, end, &taken)
}

// ListToday returns both the due and taken lists for the caller.
func (s *Service) ListToday(ctx context.Context) (*TodayResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.TodayFor(ctx, userID)
}

// DueTodayFor returns userID's untaken entries for today. It does not check
// the caller; dashboards use it after resolving whose data to show.
func (s *Service) DueTodayFor(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleEntry, error) {
	start, end := s.today()
	if err := s.ensureDay(ctx, userID, start); err != nil {
		return nil, err
	}
	pending := false
	return s.listBetween(ctx, userID, start, end, &pending)
}

// TodayFor returns userID's due and taken entries for today.
func (s *Service) TodayFor(ctx context.Context, userID uuid.UUID) (*TodayResult, error) {
	start, end := s.today()
	if err := s.ensureDay(ctx, userID, start); err != nil {
		return nil, err
	}

	all, err := s.listBetween(ctx, userID, start, end, nil)
	if err != nil {
		return nil, err
	}

	res := &TodayResult{
		Due:   make([]domain.ScheduleEntry, 0, len(all)),
		Taken: make([]domain.ScheduleEntry, 0, len(all)),
	}
	for _, e := range all {
		if e.IsTaken {
			res.Taken = append(res.Taken, e)
		} else {
			res.Due = append(res.Due, e)
		}
	}
	return res, nil
}

func (s *Service) listBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, taken *bool) ([]domain.ScheduleEntry, error) {
	entries, err := s.schedule.ListBetween(ctx, userID, from, to, taken)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return entries, nil
}

// ensureDay materialises the occurrences of day for every medicine of
// userID. Existing slots are left untouched, so repeated calls are no-ops.
func (s *Service) ensureDay(ctx context.Context, userID uuid.UUID, day time.Time) error {
	list, err := s.medicines.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list medicines: %w", err)
	}

	var entries []domain.ScheduleEntry
	for _, m := range list {
		entries = append(entries, Expand(m, 1, day)...)
	}
	if len(entries) == 0 {
		return nil
	}

	inserted, err := s.schedule.InsertBatch(ctx, entries)
	if err != nil {
		return fmt.Errorf("materialise schedule: %w", err)
	}
	if inserted > 0 {
		s.metrics.ScheduleEntriesGenerated(metrics.SourceOnDemand, inserted)
		s.log.InfoContext(ctx, "schedule materialised",
			slog.String("user_id", userID.String()),
			slog.String("day", day.Format(time.DateOnly)),
			slog.Int64("inserted", inserted),
		)
	}
	return nil
}
