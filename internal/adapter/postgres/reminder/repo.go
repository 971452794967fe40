// Package reminder implements the Reminder repository using PostgreSQL.
package reminder

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

const table = "reminders"

var columns = []string{"id", "user_id", "title", "description", "due_at", "completed", "completed_at", "created_at"}

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reminder repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a reminder.
func (r *Repo) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(table).Columns(columns...).
		Values(rem.ID, rem.UserID, rem.Title, rem.Description, rem.DueAt, rem.Completed, rem.CompletedAt, rem.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row reminderRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "reminder", rem.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// ListPending returns incomplete reminders ordered by due time.
// Zero from/to leave that side of the range open; limit <= 0 means no limit.
func (r *Repo) ListPending(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID, "completed": false}).
		OrderBy("due_at ASC")
	if !from.IsZero() {
		query = query.Where(squirrel.GtOrEq{"due_at": from})
	}
	if !to.IsZero() {
		query = query.Where(squirrel.Lt{"due_at": to})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	var rows []reminderRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list pending reminders of %s: %w", userID, err)
	}
	return toDomainList(rows), nil
}

// ListCompleted returns completed reminders, most recently completed first.
func (r *Repo) ListCompleted(ctx context.Context, userID uuid.UUID) ([]domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []reminderRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID, "completed": true}).
		OrderBy("completed_at DESC")
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list completed reminders of %s: %w", userID, err)
	}
	return toDomainList(rows), nil
}

// Complete marks an incomplete reminder as completed.
// Returns domain.ErrNotFound if the reminder is missing or already completed.
func (r *Repo) Complete(ctx context.Context, userID, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Update(table).
		Set("completed", true).
		Set("completed_at", at).
		Where(squirrel.Eq{"id": id, "user_id": userID, "completed": false}))
	if err != nil {
		return postgres.MapError(err, "reminder", id)
	}
	if n == 0 {
		return fmt.Errorf("reminder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a reminder owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "reminder", id)
	}
	if n == 0 {
		return fmt.Errorf("reminder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of reminders across all users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count reminders: %w", err)
	}
	return n, nil
}

type reminderRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	DueAt       time.Time  `db:"due_at"`
	Completed   bool       `db:"completed"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (row reminderRow) toDomain() domain.Reminder {
	return domain.Reminder{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		DueAt:       row.DueAt,
		Completed:   row.Completed,
		CompletedAt: row.CompletedAt,
		CreatedAt:   row.CreatedAt,
	}
}

func toDomainList(rows []reminderRow) []domain.Reminder {
	out := make([]domain.Reminder, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
