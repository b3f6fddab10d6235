// Package gold implements gold price storage using PostgreSQL.
package gold

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides gold price persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new gold price repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const priceColumns = `id, source, type, buy::float8, sell::float8, unit, currency, fetched_at`

const insertSQL = `
INSERT INTO gold_prices (source, type, buy, sell, unit, currency, fetched_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const lastFetchedSQL = `
SELECT source, max(fetched_at)
FROM gold_prices
GROUP BY source`

const pruneSQL = `DELETE FROM gold_prices WHERE fetched_at < $1`

// InsertBatch stores quotes and returns the number of rows written.
func (r *Repo) InsertBatch(ctx context.Context, prices []domain.GoldPrice) (int, error) {
	if len(prices) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range prices {
		fetched := p.FetchedAt
		if fetched.IsZero() {
			fetched = time.Now()
		}
		cur := p.Currency
		if cur == "" {
			cur = string(domain.CurrencyVND)
		}
		batch.Queue(insertSQL, p.Source, p.Type, p.Buy, p.Sell, p.Unit, cur, fetched.UTC())
	}

	n, err := postgres.SendBatchExec(ctx, postgres.QuerierFromCtx(ctx, r.pool), batch)
	if err != nil {
		return n, postgres.MapError(err, "gold price", prices[0].Source)
	}
	return n, nil
}

// Latest returns the newest quote per (source, type), optionally narrowed to
// one type.
func (r *Repo) Latest(ctx context.Context, goldType string) ([]domain.GoldPrice, error) {
	qb := postgres.Builder().
		Select(priceColumns).
		Options("DISTINCT ON (source, type)").
		From("gold_prices")
	if goldType != "" {
		qb = qb.Where("type = ?", goldType)
	}
	sql, args, err := qb.OrderBy("source", "type", "fetched_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest gold: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// History returns quotes fetched since f.Since, oldest first.
func (r *Repo) History(ctx context.Context, f domain.GoldHistoryFilter) ([]domain.GoldPrice, error) {
	qb := postgres.Builder().
		Select(priceColumns).
		From("gold_prices").
		Where("fetched_at >= ?", f.Since.UTC())
	if f.Type != "" {
		qb = qb.Where("type = ?", f.Type)
	}
	if f.Source != "" {
		qb = qb.Where("source = ?", f.Source)
	}
	sql, args, err := qb.OrderBy("fetched_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build gold history: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// LastFetched maps each source to its newest fetched_at.
func (r *Repo) LastFetched(ctx context.Context) (map[string]time.Time, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, lastFetchedSQL)
	if err != nil {
		return nil, fmt.Errorf("gold last fetched: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var (
			src string
			at  time.Time
		)
		if err := rows.Scan(&src, &at); err != nil {
			return nil, fmt.Errorf("scan gold last fetched: %w", err)
		}
		out[src] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gold last fetched: %w", err)
	}
	return out, nil
}

// Prune deletes quotes older than cutoff.
func (r *Repo) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, pruneSQL, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune gold prices: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.GoldPrice, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query gold prices: %w", err)
	}
	defer rows.Close()

	prices := []domain.GoldPrice{}
	for rows.Next() {
		var p domain.GoldPrice
		if err := rows.Scan(&p.ID, &p.Source, &p.Type, &p.Buy, &p.Sell, &p.Unit, &p.Currency, &p.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan gold price: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query gold prices: %w", err)
	}
	return prices, nil
}
