// Package wedding implements the WeddingURL repository using PostgreSQL.
package wedding

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides wedding URL persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new wedding URL repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

const urlColumns = `id, user_id, base_url, created_at, updated_at, deleted_at`

const lockUserSQL = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

const retireActiveSQL = `
UPDATE wedding_urls SET deleted_at = NOW(), updated_at = NOW()
WHERE user_id = $1 AND deleted_at IS NULL`

const insertSQL = `
INSERT INTO wedding_urls (user_id, base_url)
VALUES ($1, $2)
RETURNING ` + urlColumns

const getActiveSQL = `
SELECT ` + urlColumns + `
FROM wedding_urls
WHERE user_id = $1 AND deleted_at IS NULL`

const historySQL = `
SELECT ` + urlColumns + `
FROM wedding_urls
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

const countHistorySQL = `SELECT count(*) FROM wedding_urls WHERE user_id = $1`

const softDeleteSQL = `
UPDATE wedding_urls SET deleted_at = NOW(), updated_at = NOW()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

// Replace retires every active URL of the user and inserts baseURL as the
// new active one. The owning user row is locked first, so concurrent
// replaces for the same user serialize and exactly one active row remains.
func (r *Repo) Replace(ctx context.Context, userID uuid.UUID, baseURL string) (*domain.WeddingURL, error) {
	var created *domain.WeddingURL

	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		var locked uuid.UUID
		if err := q.QueryRow(ctx, lockUserSQL, userID).Scan(&locked); err != nil {
			return postgres.MapError(err, "user", userID)
		}

		if _, err := q.Exec(ctx, retireActiveSQL, userID); err != nil {
			return fmt.Errorf("retire wedding urls: %w", err)
		}

		w, err := scanURL(q.QueryRow(ctx, insertSQL, userID, baseURL))
		if err != nil {
			return postgres.MapError(err, "wedding url", userID)
		}
		created = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetActive returns the user's active URL.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.WeddingURL, error) {
	w, err := scanURL(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getActiveSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "active wedding url", userID)
	}
	return w, nil
}

// History returns all URLs of the user, newest first, soft-deleted included.
func (r *Repo) History(ctx context.Context, userID uuid.UUID, page domain.Page) ([]domain.WeddingURL, int, error) {
	page = page.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countHistorySQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wedding urls: %w", err)
	}

	rows, err := q.Query(ctx, historySQL, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list wedding urls: %w", err)
	}
	defer rows.Close()

	urls := []domain.WeddingURL{}
	for rows.Next() {
		w, err := scanURL(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan wedding url: %w", err)
		}
		urls = append(urls, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list wedding urls: %w", err)
	}
	return urls, total, nil
}

// SoftDelete retires one URL. A second delete returns domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, softDeleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "wedding url", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("wedding url %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanURL(row pgx.Row) (*domain.WeddingURL, error) {
	var w domain.WeddingURL
	if err := row.Scan(&w.ID, &w.UserID, &w.BaseURL, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
