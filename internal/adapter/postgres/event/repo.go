// Package event implements the CountdownEvent repository using PostgreSQL.
package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides countdown event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const eventColumns = `id, user_id, title, description, event_date, recurring, timezone, color, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO countdown_events (user_id, title, description, event_date, recurring, timezone, color)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + eventColumns

const getByIDSQL = `
SELECT ` + eventColumns + `
FROM countdown_events
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const softDeleteSQL = `
UPDATE countdown_events SET deleted_at = NOW()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

var updater = postgres.NewUpdateBuilder("countdown_events",
	[]string{"title", "description", "event_date", "recurring", "timezone", "color"},
	eventColumns,
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the user's events ordered by event_date ascending. With
// Upcoming set, past one-off events are excluded; recurring events always
// have a future occurrence.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.EventFilter) ([]domain.CountdownEvent, int, error) {
	page := f.Page.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := postgres.Builder().
		Select().
		From("countdown_events").
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL")
	if f.Upcoming {
		base = base.Where("(recurring IS NOT NULL OR event_date >= NOW())")
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build event count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	listSQL, listArgs, err := base.Columns(eventColumns).
		OrderBy("event_date ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build event list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []domain.CountdownEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

// GetByID returns an event owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CountdownEvent, error) {
	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an event.
func (r *Repo) Create(ctx context.Context, e *domain.CountdownEvent) (*domain.CountdownEvent, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		e.UserID, e.Title, e.Description, e.EventDate.UTC(), recurringValue(e.Recurring), e.Timezone, string(e.Color),
	)

	created, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "event", uuid.Nil)
	}
	return created, nil
}

// Update applies the set fields of patch.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.EventPatch) (*domain.CountdownEvent, error) {
	var fields []postgres.Field
	fields = postgres.AppendOptional(fields, "title", patch.Title, nil)
	fields = postgres.AppendOptional(fields, "description", patch.Description, nil)
	fields = postgres.AppendOptional(fields, "event_date", patch.EventDate, nil)
	fields = postgres.AppendOptional(fields, "recurring", patch.Recurring, func(r domain.Recurrence) any { return string(r) })
	fields = postgres.AppendOptional(fields, "timezone", patch.Timezone, nil)
	fields = postgres.AppendOptional(fields, "color", patch.Color, func(c domain.Color) any { return string(c) })

	sql, args, err := updater.Build(id, userID, fields)
	if err != nil {
		return nil, err
	}

	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return e, nil
}

// SoftDelete sets deleted_at. A second delete returns domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, softDeleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func recurringValue(r *domain.Recurrence) any {
	if r == nil {
		return nil
	}
	return string(*r)
}

func scanEvent(row pgx.Row) (*domain.CountdownEvent, error) {
	var (
		e         domain.CountdownEvent
		recurring *string
		color     string
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.EventDate, &recurring,
		&e.Timezone, &color, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt); err != nil {
		return nil, err
	}
	if recurring != nil {
		rec := domain.Recurrence(*recurring)
		e.Recurring = &rec
	}
	e.Color = domain.Color(color)
	return &e, nil
}
