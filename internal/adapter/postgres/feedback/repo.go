// Package feedback implements the Feedback repository using PostgreSQL.
package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feedback repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const feedbackColumns = `id, user_id, message, rating, created_at`

const createSQL = `
INSERT INTO feedback (user_id, message, rating)
VALUES ($1, $2, $3)
RETURNING ` + feedbackColumns

const listSQL = `
SELECT ` + feedbackColumns + `
FROM feedback
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

const countSQL = `SELECT count(*) FROM feedback`

// Create stores a feedback message.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	created, err := scanFeedback(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, f.UserID, f.Message, f.Rating))
	if err != nil {
		return nil, postgres.MapError(err, "feedback", uuid.Nil)
	}
	return created, nil
}

// List returns feedback newest first.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.Feedback, int, error) {
	page = page.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count feedback: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	out := []domain.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list feedback: %w", err)
	}
	return out, total, nil
}

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	var (
		f      domain.Feedback
		rating *int16
	)
	if err := row.Scan(&f.ID, &f.UserID, &f.Message, &rating, &f.CreatedAt); err != nil {
		return nil, err
	}
	if rating != nil {
		v := int(*rating)
		f.Rating = &v
	}
	return &f, nil
}
