// Package weatherfav implements saved weather locations using PostgreSQL.
package weatherfav

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides weather favorite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new weather favorite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const favoriteColumns = `id, user_id, city, country, lat, lon, created_at`

const listSQL = `
SELECT ` + favoriteColumns + `
FROM weather_favorites
WHERE user_id = $1
ORDER BY created_at ASC, id ASC`

const createSQL = `
INSERT INTO weather_favorites (user_id, city, country, lat, lon)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + favoriteColumns

const deleteSQL = `DELETE FROM weather_favorites WHERE id = $1 AND user_id = $2`

// List returns the user's saved locations in insertion order.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.WeatherFavorite, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list weather favorites: %w", err)
	}
	defer rows.Close()

	favs := []domain.WeatherFavorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weather favorite: %w", err)
		}
		favs = append(favs, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list weather favorites: %w", err)
	}
	return favs, nil
}

// Create saves a location. The same city twice (case-insensitive) yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, f *domain.WeatherFavorite) (*domain.WeatherFavorite, error) {
	created, err := scanFavorite(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		f.UserID, f.City, f.Country, f.Lat, f.Lon))
	if err != nil {
		return nil, postgres.MapError(err, "weather favorite", f.City)
	}
	return created, nil
}

// Delete removes a saved location owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "weather favorite", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("weather favorite %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanFavorite(row pgx.Row) (*domain.WeatherFavorite, error) {
	var f domain.WeatherFavorite
	if err := row.Scan(&f.ID, &f.UserID, &f.City, &f.Country, &f.Lat, &f.Lon, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
