// Package passwordreset implements single-use password reset tokens using PostgreSQL.
package passwordreset

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides password reset persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new password reset repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const resetColumns = `id, user_id, token_hash, expires_at, used_at, created_at`

const createSQL = `
INSERT INTO password_resets (id, user_id, token_hash, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + resetColumns

// Consuming and validating happen in one statement so a token can be used once.
const consumeSQL = `
UPDATE password_resets SET used_at = now()
WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()
RETURNING ` + resetColumns

const invalidateForUserSQL = `
UPDATE password_resets SET used_at = now()
WHERE user_id = $1 AND used_at IS NULL`

// Create stores a new reset token.
func (r *Repo) Create(ctx context.Context, p *domain.PasswordReset) (*domain.PasswordReset, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, p.ID, p.UserID, p.TokenHash, p.ExpiresAt.UTC())

	created, err := scanReset(row)
	if err != nil {
		return nil, postgres.MapError(err, "password_reset", p.ID)
	}
	return created, nil
}

// Consume marks a usable token as used and returns it.
// Unknown, used or expired tokens yield domain.ErrNotFound.
func (r *Repo) Consume(ctx context.Context, tokenHash string) (*domain.PasswordReset, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, consumeSQL, tokenHash)

	p, err := scanReset(row)
	if err != nil {
		return nil, postgres.MapError(err, "password_reset", "by-hash")
	}
	return p, nil
}

// InvalidateForUser marks every outstanding token of the user as used.
func (r *Repo) InvalidateForUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, invalidateForUserSQL, userID); err != nil {
		return fmt.Errorf("invalidate password resets: %w", err)
	}
	return nil
}

func scanReset(row pgx.Row) (*domain.PasswordReset, error) {
	var p domain.PasswordReset
	if err := row.Scan(&p.ID, &p.UserID, &p.TokenHash, &p.ExpiresAt, &p.UsedAt, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
