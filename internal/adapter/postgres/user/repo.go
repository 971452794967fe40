// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{
	"id", "email", "name", "phone", "password_hash", "role", "gender", "age", "elder_id",
	"street", "city", "state", "pincode", "emergency_contact", "monthly_budget",
	"created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByEmail returns a user by email address. Emails are stored lower-cased.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))})
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := row.toDomain()
	return &u, nil
}

// ListByIDs returns the users with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []userRow
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list users by ids: %w", err)
	}

	return toDomainList(rows), nil
}

// ListCaregivers returns the caregivers linked to elderID, oldest link first.
func (r *Repo) ListCaregivers(ctx context.Context, elderID uuid.UUID) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []userRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"elder_id": elderID, "role": string(domain.UserRoleCaregiver)}).
		OrderBy("created_at ASC")
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list caregivers of %s: %w", elderID, err)
	}

	return toDomainList(rows), nil
}

// List returns users ordered by newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []userRow
	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return toDomainList(rows), nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(table).Columns(columns...).
		Values(
			u.ID, strings.ToLower(strings.TrimSpace(u.Email)), u.Name, u.Phone, u.PasswordHash,
			string(u.Role), u.Gender, u.Age, u.ElderID,
			u.Address.Street, u.Address.City, u.Address.State, u.Address.Pincode,
			u.EmergencyContact, u.MonthlyBudget, u.CreatedAt, u.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row userRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// UpdateProfile writes the editable profile fields of u, including the password hash.
func (r *Repo) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Update(table).
		Set("name", u.Name).
		Set("phone", u.Phone).
		Set("gender", u.Gender).
		Set("age", u.Age).
		Set("monthly_budget", u.MonthlyBudget).
		Set("emergency_contact", u.EmergencyContact).
		Set("password_hash", u.PasswordHash).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": u.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row userRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID               uuid.UUID  `db:"id"`
	Email            string     `db:"email"`
	Name             string     `db:"name"`
	Phone            string     `db:"phone"`
	PasswordHash     string     `db:"password_hash"`
	Role             string     `db:"role"`
	Gender           string     `db:"gender"`
	Age              int        `db:"age"`
	ElderID          *uuid.UUID `db:"elder_id"`
	Street           string     `db:"street"`
	City             string     `db:"city"`
	State            string     `db:"state"`
	Pincode          string     `db:"pincode"`
	EmergencyContact string     `db:"emergency_contact"`
	MonthlyBudget    float64    `db:"monthly_budget"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		Phone:        row.Phone,
		PasswordHash: row.PasswordHash,
		Role:         domain.UserRole(row.Role),
		Gender:       row.Gender,
		Age:          row.Age,
		ElderID:      row.ElderID,
		Address: domain.Address{
			Street:  row.Street,
			City:    row.City,
			State:   row.State,
			Pincode: row.Pincode,
		},
		EmergencyContact: row.EmergencyContact,
		MonthlyBudget:    row.MonthlyBudget,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toDomainList(rows []userRow) []domain.User {
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users
}
