// Package medicine implements the Medicine repository using PostgreSQL.
package medicine

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

const table = "medicines"

var columns = []string{"id", "user_id", "name", "dosage", "frequency", "times", "days", "notes", "created_at"}

// Repo provides medicine persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new medicine repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a medicine and returns the stored row.
func (r *Repo) Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(table).Columns(columns...).
		Values(m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.Times, m.Days, m.Notes, m.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row medicineRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "medicine", m.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a medicine owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Medicine, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row medicineRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "medicine", id)
	}

	m := row.toDomain()
	return &m, nil
}

// ListByUser returns the user's medicines sorted by name.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Medicine, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []medicineRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC", "created_at ASC")
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list medicines of %s: %w", userID, err)
	}

	return toDomainList(rows), nil
}

// ListPage returns up to limit medicines of all users with id greater than
// afterID, in id order. Pass uuid.Nil to start from the beginning.
func (r *Repo) ListPage(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Medicine, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []medicineRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit))
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list medicines page: %w", err)
	}

	return toDomainList(rows), nil
}

// Delete removes a medicine owned by userID.
// Returns domain.ErrNotFound when nothing matched.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "medicine", id)
	}
	if n == 0 {
		return fmt.Errorf("medicine %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of medicines across all users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count medicines: %w", err)
	}
	return n, nil
}

type medicineRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Dosage    string    `db:"dosage"`
	Frequency string    `db:"frequency"`
	Times     []string  `db:"times"`
	Days      []string  `db:"days"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}

func (row medicineRow) toDomain() domain.Medicine {
	return domain.Medicine{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Dosage:    row.Dosage,
		Frequency: row.Frequency,
		Times:     row.Times,
		Days:      row.Days,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
	}
}

func toDomainList(rows []medicineRow) []domain.Medicine {
	out := make([]domain.Medicine, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
