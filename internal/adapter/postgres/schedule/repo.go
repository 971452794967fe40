// Package schedule implements the medicine schedule entry repository.
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agewell-backend/internal/domain"
)

const (
	table = "medicine_schedule"

	// insertChunk bounds the number of rows per multi-row INSERT.
	insertChunk = 500
)

var columns = []string{
	"id", "user_id", "medicine_id", "medicine_name", "dosage", "time_of_day",
	"scheduled_at", "is_taken", "taken_at", "version", "created_at",
}

// Repo provides schedule entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new schedule repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// InsertBatch inserts entries, skipping any (medicine, slot) pair that already
// exists. Returns the number of rows actually inserted.
func (r *Repo) InsertBatch(ctx context.Context, entries []domain.ScheduleEntry) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var inserted int64
	for start := 0; start < len(entries); start += insertChunk {
		end := min(start+insertChunk, len(entries))

		insert := postgres.Builder().Insert(table).Columns(columns...)
		for _, e := range entries[start:end] {
			insert = insert.Values(
				e.ID, e.UserID, e.MedicineID, e.MedicineName, e.Dosage, e.Time,
				e.ScheduledAt, e.IsTaken, e.TakenAt, e.Version, e.CreatedAt,
			)
		}
		insert = insert.Suffix("ON CONFLICT (medicine_id, scheduled_at) DO NOTHING")

		n, err := postgres.Exec(ctx, q, insert)
		if err != nil {
			return inserted, postgres.MapError(err, "medicine_schedule", entries[start].MedicineID)
		}
		inserted += n
	}

	return inserted, nil
}

// ListBetween returns the user's entries scheduled in [from, to), ascending by
// time. A non-nil taken filters on the taken flag.
func (r *Repo) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, taken *bool) ([]domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.And{
		squirrel.Eq{"user_id": userID},
		squirrel.GtOrEq{"scheduled_at": from},
		squirrel.Lt{"scheduled_at": to},
	}
	if taken != nil {
		where = append(where, squirrel.Eq{"is_taken": *taken})
	}

	var rows []entryRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(where).
		OrderBy("scheduled_at ASC", "medicine_name ASC")
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list schedule of %s: %w", userID, err)
	}

	out := make([]domain.ScheduleEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetByID returns an entry owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row entryRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "medicine_schedule", id)
	}

	e := row.toDomain()
	return &e, nil
}

// SetTaken updates the taken flag and timestamp of an entry owned by userID
// and bumps its version. When expectedVersion is non-nil the update only
// applies if the stored version matches. No match surfaces as
// domain.ErrNotFound; callers tell a version conflict apart with GetByID.
func (r *Repo) SetTaken(ctx context.Context, userID, id uuid.UUID, taken bool, takenAt *time.Time, expectedVersion *int) (*domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.Eq{"id": id, "user_id": userID}
	if expectedVersion != nil {
		where["version"] = *expectedVersion
	}

	query := postgres.Builder().Update(table).
		Set("is_taken", taken).
		Set("taken_at", takenAt).
		Set("version", squirrel.Expr("version + 1")).
		Where(where).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row entryRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "medicine_schedule", id)
	}

	e := row.toDomain()
	return &e, nil
}

// DeleteByMedicine removes all of the user's entries for a medicine.
func (r *Repo) DeleteByMedicine(ctx context.Context, userID, medicineID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).
		Where(squirrel.Eq{"medicine_id": medicineID, "user_id": userID}))
	if err != nil {
		return 0, postgres.MapError(err, "medicine_schedule", medicineID)
	}
	return n, nil
}

// CountBetween counts all entries scheduled in [from, to) and how many were taken.
func (r *Repo) CountBetween(ctx context.Context, from, to time.Time) (total, taken int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)", "COUNT(*) FILTER (WHERE is_taken)").
		From(table).
		Where(squirrel.GtOrEq{"scheduled_at": from}).
		Where(squirrel.Lt{"scheduled_at": to}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build query: %w", err)
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&total, &taken); err != nil {
		return 0, 0, fmt.Errorf("count schedule: %w", err)
	}
	return total, taken, nil
}

type entryRow struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	MedicineID   uuid.UUID  `db:"medicine_id"`
	MedicineName string     `db:"medicine_name"`
	Dosage       string     `db:"dosage"`
	TimeOfDay    string     `db:"time_of_day"`
	ScheduledAt  time.Time  `db:"scheduled_at"`
	IsTaken      bool       `db:"is_taken"`
	TakenAt      *time.Time `db:"taken_at"`
	Version      int        `db:"version"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (row entryRow) toDomain() domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:           row.ID,
		UserID:       row.UserID,
		MedicineID:   row.MedicineID,
		MedicineName: row.MedicineName,
		Dosage:       row.Dosage,
		Time:         row.TimeOfDay,
		ScheduledAt:  row.ScheduledAt,
		IsTaken:      row.IsTaken,
		TakenAt:      row.TakenAt,
		Version:      row.Version,
		CreatedAt:    row.CreatedAt,
	}
}
