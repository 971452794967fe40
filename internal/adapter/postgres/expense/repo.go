// Package expense implements the regular and fixed expense repositories.
//
// Calendar dates (spent_on, due_date) are passed in and returned as midnight
// UTC of the civil date.
package expense

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
	regularTable = "regular_expenses"
	fixedTable   = "fixed_expenses"
)

var regularColumns = []string{"id", "user_id", "name", "amount", "category", "description", "spent_on", "created_at"}

var fixedColumns = []string{
	"id", "user_id", "name", "amount", "category", "frequency", "description",
	"due_date", "is_paid", "paid_at", "created_at",
}

// Repo provides expense persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new expense repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Regular expenses
// ---------------------------------------------------------------------------

// CreateRegular inserts a one-time expense.
func (r *Repo) CreateRegular(ctx context.Context, e *domain.RegularExpense) (*domain.RegularExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(regularTable).Columns(regularColumns...).
		Values(e.ID, e.UserID, e.Name, e.Amount, e.Category, e.Description, e.SpentOn, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(regularColumns, ", "))

	var row regularRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "expense", e.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// ListRegular returns the user's expenses spent in [from, to), newest first.
func (r *Repo) ListRegular(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.RegularExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(regularColumns...).From(regularTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"spent_on": from}).
		Where(squirrel.Lt{"spent_on": to}).
		OrderBy("spent_on DESC", "created_at DESC")

	var rows []regularRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list expenses of %s: %w", userID, err)
	}
	return regularList(rows), nil
}

// ListRecentRegular returns the user's latest expenses by date.
func (r *Repo) ListRecentRegular(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RegularExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(regularColumns...).From(regularTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("spent_on DESC", "created_at DESC").
		Limit(uint64(limit))

	var rows []regularRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list recent expenses of %s: %w", userID, err)
	}
	return regularList(rows), nil
}

// SumRegular totals the user's expenses spent in [from, to).
func (r *Repo) SumRegular(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Select("COALESCE(SUM(amount), 0)::float8").From(regularTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"spent_on": from}).
		Where(squirrel.Lt{"spent_on": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var total float64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum expenses of %s: %w", userID, err)
	}
	return total, nil
}

// DeleteRegular removes an expense owned by userID.
func (r *Repo) DeleteRegular(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, regularTable, "expense", userID, id)
}

// CountRegular returns the number of regular expenses across all users.
func (r *Repo) CountRegular(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(regularTable))
	if err != nil {
		return 0, fmt.Errorf("count expenses: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Fixed expenses
// ---------------------------------------------------------------------------

// CreateFixed inserts a recurring bill.
func (r *Repo) CreateFixed(ctx context.Context, e *domain.FixedExpense) (*domain.FixedExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(fixedTable).Columns(fixedColumns...).
		Values(e.ID, e.UserID, e.Name, e.Amount, e.Category, string(e.Frequency), e.Description,
			e.DueDate, e.IsPaid, e.PaidAt, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(fixedColumns, ", "))

	var row fixedRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "fixed expense", e.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// ListFixed returns all of the user's bills ordered by due date.
func (r *Repo) ListFixed(ctx context.Context, userID uuid.UUID) ([]domain.FixedExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(fixedColumns...).From(fixedTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("due_date ASC", "name ASC")

	var rows []fixedRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list fixed expenses of %s: %w", userID, err)
	}
	return fixedList(rows), nil
}

// ListUnpaidDue returns unpaid bills due within [from, to] inclusive.
func (r *Repo) ListUnpaidDue(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.FixedExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(fixedColumns...).From(fixedTable).
		Where(squirrel.Eq{"user_id": userID, "is_paid": false}).
		Where(squirrel.GtOrEq{"due_date": from}).
		Where(squirrel.LtOrEq{"due_date": to}).
		OrderBy("due_date ASC")

	var rows []fixedRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list unpaid bills of %s: %w", userID, err)
	}
	return fixedList(rows), nil
}

// ListRecentFixed returns the user's most recently added bills.
func (r *Repo) ListRecentFixed(ctx context.Context, userID uuid.UUID, limit int) ([]domain.FixedExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Select(fixedColumns...).From(fixedTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	var rows []fixedRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list recent fixed expenses of %s: %w", userID, err)
	}
	return fixedList(rows), nil
}

// SetPaid updates the payment state of a bill owned by userID.
// paidAt must be nil when paid is false.
func (r *Repo) SetPaid(ctx context.Context, userID, id uuid.UUID, paid bool, paidAt *time.Time) (*domain.FixedExpense, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Update(fixedTable).
		Set("is_paid", paid).
		Set("paid_at", paidAt).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(fixedColumns, ", "))

	var row fixedRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "fixed expense", id)
	}

	out := row.toDomain()
	return &out, nil
}

// DeleteFixed removes a bill owned by userID.
func (r *Repo) DeleteFixed(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, fixedTable, "fixed expense", userID, id)
}

// CountFixed returns the number of fixed expenses across all users.
func (r *Repo) CountFixed(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(fixedTable))
	if err != nil {
		return 0, fmt.Errorf("count fixed expenses: %w", err)
	}
	return n, nil
}

func (r *Repo) deleteOwned(ctx context.Context, tbl, entity string, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(tbl).
		Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

type regularRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Amount      float64   `db:"amount"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	SpentOn     time.Time `db:"spent_on"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row regularRow) toDomain() domain.RegularExpense {
	return domain.RegularExpense{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Amount:      row.Amount,
		Category:    row.Category,
		Description: row.Description,
		SpentOn:     row.SpentOn,
		CreatedAt:   row.CreatedAt,
	}
}

func regularList(rows []regularRow) []domain.RegularExpense {
	out := make([]domain.RegularExpense, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

type fixedRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Name        string     `db:"name"`
	Amount      float64    `db:"amount"`
	Category    string     `db:"category"`
	Frequency   string     `db:"frequency"`
	Description string     `db:"description"`
	DueDate     time.Time  `db:"due_date"`
	IsPaid      bool       `db:"is_paid"`
	PaidAt      *time.Time `db:"paid_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (row fixedRow) toDomain() domain.FixedExpense {
	return domain.FixedExpense{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Amount:      row.Amount,
		Category:    row.Category,
		Frequency:   domain.ExpenseFrequency(row.Frequency),
		Description: row.Description,
		DueDate:     row.DueDate,
		IsPaid:      row.IsPaid,
		PaidAt:      row.PaidAt,
		CreatedAt:   row.CreatedAt,
	}
}

func fixedList(rows []fixedRow) []domain.FixedExpense {
	out := make([]domain.FixedExpense, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
