// Package note implements the Note repository using PostgreSQL. Every
// statement is scoped by owner and excludes soft-deleted rows.
package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const noteColumns = `id, user_id, title, content, color, pinned, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO notes (user_id, title, content, color, pinned)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + noteColumns

const getByIDSQL = `
SELECT ` + noteColumns + `
FROM notes
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const togglePinSQL = `
UPDATE notes SET pinned = NOT pinned, updated_at = NOW()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
RETURNING ` + noteColumns

const softDeleteSQL = `
UPDATE notes SET deleted_at = NOW()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

var updater = postgres.NewUpdateBuilder("notes", []string{"title", "content", "color", "pinned"}, noteColumns)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the user's notes ordered pinned first, newest first, plus the
// total number of matching rows.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.NoteFilter) ([]domain.Note, int, error) {
	page := f.Page.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := postgres.Builder().
		Select().
		From("notes").
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL")
	if f.Pinned != nil {
		base = base.Where("pinned = ?", *f.Pinned)
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build note count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notes: %w", err)
	}

	listSQL, listArgs, err := base.Columns(noteColumns).
		OrderBy("pinned DESC", "created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build note list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list notes: %w", err)
	}
	return notes, total, nil
}

// GetByID returns a note owned by userID.
// Returns domain.ErrNotFound for missing, foreign or soft-deleted notes.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, userID)

	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		n.UserID, n.Title, n.Content, string(n.Color), n.Pinned,
	)

	created, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", uuid.Nil)
	}
	return created, nil
}

// Update applies the set fields of patch.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.NotePatch) (*domain.Note, error) {
	var fields []postgres.Field
	fields = postgres.AppendOptional(fields, "title", patch.Title, nil)
	fields = postgres.AppendOptional(fields, "content", patch.Content, nil)
	fields = postgres.AppendOptional(fields, "color", patch.Color, func(c domain.Color) any { return string(c) })
	fields = postgres.AppendOptional(fields, "pinned", patch.Pinned, nil)

	sql, args, err := updater.Build(id, userID, fields)
	if err != nil {
		return nil, err
	}

	n, err := scanNote(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

// TogglePin flips the pinned flag.
func (r *Repo) TogglePin(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error) {
	n, err := scanNote(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, togglePinSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

// SoftDelete sets deleted_at. A second delete returns domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, softDeleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNote(row pgx.Row) (*domain.Note, error) {
	var (
		n     domain.Note
		color string
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &color, &n.Pinned,
		&n.CreatedAt, &n.UpdatedAt, &n.DeletedAt); err != nil {
		return nil, err
	}
	n.Color = domain.Color(color)
	return &n, nil
}

func scanNotes(rows pgx.Rows) ([]domain.Note, error) {
	notes := []domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
