// Package feedback implements the Feedback repository using PostgreSQL.
package feedback

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

const table = "feedback"

var columns = []string{"id", "user_id", "type", "rating", "message", "priority", "status", "created_at"}

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new feedback repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a feedback item.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(table).Columns(columns...).
		Values(f.ID, f.UserID, f.Type, f.Rating, f.Message, string(f.Priority), string(f.Status), f.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row feedbackRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "feedback", f.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// List returns feedback items, newest first. limit <= 0 means no limit.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	var rows []feedbackRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	out := make([]domain.Feedback, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// SetStatus changes the handling status of a feedback item.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.FeedbackStatus) (*domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Update(table).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row feedbackRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "feedback", id)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a feedback item.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "feedback", id)
	}
	if n == 0 {
		return fmt.Errorf("feedback %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of feedback items.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return n, nil
}

type feedbackRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"type"`
	Rating    *int      `db:"rating"`
	Message   string    `db:"message"`
	Priority  string    `db:"priority"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (row feedbackRow) toDomain() domain.Feedback {
	return domain.Feedback{
		ID:        row.ID,
		UserID:    row.UserID,
		Type:      row.Type,
		Rating:    row.Rating,
		Message:   row.Message,
		Priority:  domain.FeedbackPriority(row.Priority),
		Status:    domain.FeedbackStatus(row.Status),
		CreatedAt: row.CreatedAt,
	}
}
