// Package emergency implements the emergency call log repository.
package emergency

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

const table = "emergency_logs"

var columns = []string{
	"id", "user_id", "user_name", "contact_type", "phone_number",
	"linked_caregiver_id", "linked_caregiver_name", "created_at",
}

// Repo provides emergency log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new emergency log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a log entry.
func (r *Repo) Create(ctx context.Context, l *domain.EmergencyLog) (*domain.EmergencyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(table).Columns(columns...).
		Values(l.ID, l.UserID, l.UserName, l.ContactType, l.PhoneNumber,
			l.LinkedCaregiverID, l.LinkedCaregiverName, l.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row logRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "emergency_log", l.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// DeleteOlderThan removes logs created strictly before cutoff and returns
// the number of rows removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).
		Where(squirrel.Lt{"created_at": cutoff}))
	if err != nil {
		return 0, fmt.Errorf("delete emergency logs before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}

// ListSince returns logs created at or after since, newest first.
// A non-empty userIDs restricts the result to those users; limit <= 0 means no limit.
func (r *Repo) ListSince(ctx context.Context, userIDs []uuid.UUID, since time.Time, limit int) ([]domain.EmergencyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC")
	if len(userIDs) > 0 {
		query = query.Where(squirrel.Eq{"user_id": userIDs})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	var rows []logRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list emergency logs: %w", err)
	}

	out := make([]domain.EmergencyLog, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Count returns the number of stored logs.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count emergency logs: %w", err)
	}
	return n, nil
}

type logRow struct {
	ID                  uuid.UUID  `db:"id"`
	UserID              uuid.UUID  `db:"user_id"`
	UserName            string     `db:"user_name"`
	ContactType         string     `db:"contact_type"`
	PhoneNumber         string     `db:"phone_number"`
	LinkedCaregiverID   *uuid.UUID `db:"linked_caregiver_id"`
	LinkedCaregiverName *string    `db:"linked_caregiver_name"`
	CreatedAt           time.Time  `db:"created_at"`
}

func (row logRow) toDomain() domain.EmergencyLog {
	return domain.EmergencyLog{
		ID:                  row.ID,
		UserID:              row.UserID,
		UserName:            row.UserName,
		ContactType:         row.ContactType,
		PhoneNumber:         row.PhoneNumber,
		LinkedCaregiverID:   row.LinkedCaregiverID,
		LinkedCaregiverName: row.LinkedCaregiverName,
		CreatedAt:           row.CreatedAt,
	}
}
