// Package event implements the Event and participant repositories using PostgreSQL.
package event

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
	table             = "events"
	participantsTable = "event_participants"
	participantsPKey  = "event_participants_pkey"
)

var insertColumns = []string{
	"id", "organizer_id", "organizer_name", "name", "description",
	"starts_at", "location", "max_participants", "created_at",
}

var selectColumns = []string{
	"e.id", "e.organizer_id", "e.organizer_name", "e.name", "e.description",
	"e.starts_at", "e.location", "e.max_participants", "e.created_at",
	"(SELECT COUNT(*) FROM event_participants p WHERE p.event_id = e.id) AS participant_count",
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectEvents() squirrel.SelectBuilder {
	return postgres.Builder().Select(selectColumns...).From(table + " e")
}

// Create inserts an event. The returned event has no participants yet.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().Insert(table).Columns(insertColumns...).
		Values(e.ID, e.OrganizerID, e.OrganizerName, e.Name, e.Description,
			e.StartsAt, e.Location, e.MaxParticipants, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(insertColumns, ", ") + ", 0 AS participant_count")

	var row eventRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "event", e.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// GetByID returns an event with its participant count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns an event and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := selectEvents().Where(squirrel.Eq{"e.id": id})
	if lock {
		query = query.Suffix("FOR UPDATE OF e")
	}

	var row eventRow
	if err := postgres.Get(ctx, q, query, &row); err != nil {
		return nil, postgres.MapError(err, "event", id)
	}

	out := row.toDomain()
	return &out, nil
}

// ListFrom returns events starting at or after from, soonest first.
// A zero from lists every event.
func (r *Repo) ListFrom(ctx context.Context, from time.Time) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := selectEvents().OrderBy("e.starts_at ASC")
	if !from.IsZero() {
		query = query.Where(squirrel.GtOrEq{"e.starts_at": from})
	}

	var rows []eventRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return toDomainList(rows), nil
}

// ListByParticipant returns the events userID has joined, soonest first.
func (r *Repo) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := selectEvents().
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM event_participants ep WHERE ep.event_id = e.id AND ep.user_id = ?)", userID)).
		OrderBy("e.starts_at ASC")

	var rows []eventRow
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list events of participant %s: %w", userID, err)
	}
	return toDomainList(rows), nil
}

// Delete removes an event. Participants are removed by the foreign key cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of events.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	n, err := postgres.Count(ctx, q, postgres.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Participants
// ---------------------------------------------------------------------------

// AddParticipant records userID as a participant of eventID.
// Joining twice surfaces as domain.ErrAlreadyExists.
func (r *Repo) AddParticipant(ctx context.Context, eventID, userID uuid.UUID, joinedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().Insert(participantsTable).
		Columns("event_id", "user_id", "joined_at").
		Values(eventID, userID, joinedAt))
	if postgres.IsConstraint(err, participantsPKey) {
		return fmt.Errorf("user %s already joined event %s: %w", userID, eventID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return postgres.MapError(err, "event participant", eventID)
	}
	return nil
}

// RemoveParticipant deletes the membership. Returns domain.ErrNotFound if
// userID had not joined.
func (r *Repo) RemoveParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(participantsTable).
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "event participant", eventID)
	}
	if n == 0 {
		return fmt.Errorf("participant %s of event %s: %w", userID, eventID, domain.ErrNotFound)
	}
	return nil
}

// ListParticipants returns the members of an event, latest joiner first.
func (r *Repo) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []participantRow
	query := postgres.Builder().Select("event_id", "user_id", "joined_at").
		From(participantsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("joined_at DESC")
	if err := postgres.Select(ctx, q, query, &rows); err != nil {
		return nil, fmt.Errorf("list participants of %s: %w", eventID, err)
	}

	out := make([]domain.Participant, len(rows))
	for i, row := range rows {
		out[i] = domain.Participant{EventID: row.EventID, UserID: row.UserID, JoinedAt: row.JoinedAt}
	}
	return out, nil
}

type eventRow struct {
	ID               uuid.UUID `db:"id"`
	OrganizerID      uuid.UUID `db:"organizer_id"`
	OrganizerName    string    `db:"organizer_name"`
	Name             string    `db:"name"`
	Description      string    `db:"description"`
	StartsAt         time.Time `db:"starts_at"`
	Location         string    `db:"location"`
	MaxParticipants  int       `db:"max_participants"`
	CreatedAt        time.Time `db:"created_at"`
	ParticipantCount int       `db:"participant_count"`
}

func (row eventRow) toDomain() domain.Event {
	return domain.Event{
		ID:               row.ID,
		OrganizerID:      row.OrganizerID,
		OrganizerName:    row.OrganizerName,
		Name:             row.Name,
		Description:      row.Description,
		StartsAt:         row.StartsAt,
		Location:         row.Location,
		MaxParticipants:  row.MaxParticipants,
		ParticipantCount: row.ParticipantCount,
		CreatedAt:        row.CreatedAt,
	}
}

func toDomainList(rows []eventRow) []domain.Event {
	out := make([]domain.Event, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

type participantRow struct {
	EventID  uuid.UUID `db:"event_id"`
	UserID   uuid.UUID `db:"user_id"`
	JoinedAt time.Time `db:"joined_at"`
}
