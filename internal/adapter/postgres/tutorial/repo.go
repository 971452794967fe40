// Package tutorial implements the tutorial request repository using PostgreSQL.
package tutorial

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

const table = "tutorial_requests"

var columns = []string{
	"id", "user_id", "user_name", "topic", "category", "description", "difficulty",
	"platform", "additional_notes", "status", "admin_notes", "created_at", "updated_at",
}

// Repo provides tutorial request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tutorial request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a tutorial request.
func (r *Repo) Create(ctx context.Context, t *domain.TutorialRequest) (*domain.TutorialRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(table).Columns(columns...).
		Values(t.ID, t.UserID, t.UserName, t.Topic, t.Category, t.Description, t.Difficulty,
			t.Platform, t.AdditionalNotes, string(t.Status), t.AdminNotes, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row requestRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "tutorial request", t.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// List returns requests newest first. A non-nil userID restricts the result
// to that user; limit <= 0 means no limit.
func (r *Repo) List(ctx context.Context, userID *uuid.UUID, limit int) ([]domain.TutorialRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")
	if userID != nil {
		query = query.Where(squirrel.Eq{"user_id": *userID})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	var rows []requestRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list tutorial requests: %w", err)
	}

	out := make([]domain.TutorialRequest, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Update sets the status and admin notes of a request and stamps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, status domain.TutorialStatus, adminNotes string, at time.Time) (*domain.TutorialRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Update(table).
		Set("status", string(status)).
		Set("admin_notes", adminNotes).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row requestRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "tutorial request", id)
	}

	out := row.toDomain()
	return &out, nil
}

// Count returns the number of tutorial requests.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count tutorial requests: %w", err)
	}
	return n, nil
}

type requestRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	UserName        string    `db:"user_name"`
	Topic           string    `db:"topic"`
	Category        string    `db:"category"`
	Description     string    `db:"description"`
	Difficulty      string    `db:"difficulty"`
	Platform        string    `db:"platform"`
	AdditionalNotes string    `db:"additional_notes"`
	Status          string    `db:"status"`
	AdminNotes      string    `db:"admin_notes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (row requestRow) toDomain() domain.TutorialRequest {
	return domain.TutorialRequest{
		ID:              row.ID,
		UserID:          row.UserID,
		UserName:        row.UserName,
		Topic:           row.Topic,
		Category:        row.Category,
		Description:     row.Description,
		Difficulty:      row.Difficulty,
		Platform:        row.Platform,
		AdditionalNotes: row.AdditionalNotes,
		Status:          domain.TutorialStatus(row.Status),
		AdminNotes:      row.AdminNotes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
