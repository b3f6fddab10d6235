// Package session implements refresh-token session persistence using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, token_hash, user_agent, ip, expires_at, revoked_at, created_at, updated_at`

const createSQL = `
INSERT INTO sessions (id, user_id, token_hash, user_agent, ip, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + sessionColumns

const getActiveByHashSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`

const revokeSQL = `
UPDATE sessions SET revoked_at = now(), updated_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeByHashSQL = `
UPDATE sessions SET revoked_at = now(), updated_at = now()
WHERE token_hash = $1 AND user_id = $2 AND revoked_at IS NULL`

const revokeAllByUserSQL = `
UPDATE sessions SET revoked_at = now(), updated_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteStaleSQL = `
DELETE FROM sessions
WHERE expires_at < $1 OR (revoked_at IS NOT NULL AND revoked_at < $1)`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		s.ID, s.UserID, s.TokenHash, s.UserAgent, s.IP, s.ExpiresAt.UTC(),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}
	return created, nil
}

// GetActiveByHash returns an unrevoked, unexpired session.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetActiveByHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getActiveByHashSQL, tokenHash)

	s, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", "by-hash")
	}
	return s, nil
}

// Revoke marks a session revoked. Revoking twice returns domain.ErrNotFound,
// which lets refresh rotation detect a concurrent reuse.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, revokeSQL, id)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RevokeByHash revokes the user's session with the given token hash.
func (r *Repo) RevokeByHash(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, revokeByHashSQL, tokenHash, userID)
	if err != nil {
		return postgres.MapError(err, "session", "by-hash")
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session by-hash: %w", domain.ErrNotFound)
	}
	return nil
}

// RevokeAllByUser revokes every active session of a user and returns the count.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, revokeAllByUserSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "session", userID)
	}
	return ct.RowsAffected(), nil
}

// DeleteStale removes sessions that expired, or were revoked, before cutoff.
func (r *Repo) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteStaleSQL, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete stale sessions: %w", err)
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.UserAgent, &s.IP,
		&s.ExpiresAt, &s.RevokedAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
