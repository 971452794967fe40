package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role and returns it.
// Caregivers are left unlinked; use SeedCaregiver to link one to an elder.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	return seedUser(t, pool, role, nil)
}

// SeedCaregiver inserts a caregiver linked to elderID.
func SeedCaregiver(t *testing.T, pool *pgxpool.Pool, elderID uuid.UUID) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleCaregiver, &elderID)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, elderID *uuid.UUID) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Phone:        "98765432101",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderpl",
		Role:         role,
		Age:          70,
		ElderID:      elderID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, phone, password_hash, role, age, elder_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Email, user.Name, user.Phone, user.PasswordHash, string(user.Role), user.Age,
		user.ElderID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedMedicine inserts a medicine owned by userID.
func SeedMedicine(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, times, days []string) domain.Medicine {
	t.Helper()
	ctx := context.Background()

	m := domain.Medicine{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Medicine " + uniqueSuffix(),
		Dosage:    "1 tablet",
		Frequency: "daily",
		Times:     times,
		Days:      days,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO medicines (id, user_id, name, dosage, frequency, times, days, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8)`,
		m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.Times, m.Days, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMedicine: %v", err)
	}

	return m
}

// SeedEmergencyLog inserts an emergency log with an explicit creation time.
func SeedEmergencyLog(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, createdAt time.Time) domain.EmergencyLog {
	t.Helper()
	ctx := context.Background()

	l := domain.EmergencyLog{
		ID:          uuid.New(),
		UserID:      userID,
		UserName:    "Test User",
		ContactType: "ambulance",
		PhoneNumber: "108",
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO emergency_logs (id, user_id, user_name, contact_type, phone_number, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.UserID, l.UserName, l.ContactType, l.PhoneNumber, l.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmergencyLog: %v", err)
	}

	return l
}
