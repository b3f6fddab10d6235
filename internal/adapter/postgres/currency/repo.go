// Package currency implements the exchange-rate cache table using PostgreSQL.
package currency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides currency rate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new currency rate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const rateColumns = `base_currency, target_currency, rate::float8, source, last_updated`

const upsertSQL = `
INSERT INTO currency_rates (base_currency, target_currency, rate, source, last_updated)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (base_currency, target_currency)
DO UPDATE SET rate = EXCLUDED.rate, source = EXCLUDED.source, last_updated = EXCLUDED.last_updated`

const listByBaseSQL = `
SELECT ` + rateColumns + `
FROM currency_rates
WHERE base_currency = $1
ORDER BY target_currency`

const getSQL = `
SELECT ` + rateColumns + `
FROM currency_rates
WHERE base_currency = $1 AND target_currency = $2`

const oldestSQL = `
SELECT min(last_updated) FROM currency_rates WHERE base_currency = $1`

// Upsert writes rates keyed on (base, target) and returns the number of rows
// written.
func (r *Repo) Upsert(ctx context.Context, rates []domain.CurrencyRate) (int, error) {
	if len(rates) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rt := range rates {
		updated := rt.LastUpdated
		if updated.IsZero() {
			updated = time.Now()
		}
		batch.Queue(upsertSQL, strings.ToUpper(rt.BaseCurrency), strings.ToUpper(rt.TargetCurrency),
			rt.Rate, rt.Source, updated.UTC())
	}

	n, err := postgres.SendBatchExec(ctx, postgres.QuerierFromCtx(ctx, r.pool), batch)
	if err != nil {
		return n, postgres.MapError(err, "currency rate", rates[0].BaseCurrency)
	}
	return n, nil
}

// ListByBase returns every cached rate for base, ordered by target.
func (r *Repo) ListByBase(ctx context.Context, base string) ([]domain.CurrencyRate, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByBaseSQL, strings.ToUpper(base))
	if err != nil {
		return nil, fmt.Errorf("list currency rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.CurrencyRate{}
	for rows.Next() {
		rt, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan currency rate: %w", err)
		}
		rates = append(rates, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list currency rates: %w", err)
	}
	return rates, nil
}

// Get returns one cached pair.
func (r *Repo) Get(ctx context.Context, base, target string) (*domain.CurrencyRate, error) {
	key := strings.ToUpper(base) + "/" + strings.ToUpper(target)
	rt, err := scanRate(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, strings.ToUpper(base), strings.ToUpper(target)))
	if err != nil {
		return nil, postgres.MapError(err, "currency rate", key)
	}
	return rt, nil
}

// OldestUpdate returns the stalest last_updated for base, or nil when no
// rate is cached.
func (r *Repo) OldestUpdate(ctx context.Context, base string) (*time.Time, error) {
	var t *time.Time
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, oldestSQL, strings.ToUpper(base)).Scan(&t); err != nil {
		return nil, fmt.Errorf("oldest currency rate: %w", err)
	}
	return t, nil
}

func scanRate(row pgx.Row) (*domain.CurrencyRate, error) {
	var rt domain.CurrencyRate
	if err := row.Scan(&rt.BaseCurrency, &rt.TargetCurrency, &rt.Rate, &rt.Source, &rt.LastUpdated); err != nil {
		return nil, err
	}
	rt.BaseCurrency = strings.TrimSpace(rt.BaseCurrency)
	rt.TargetCurrency = strings.TrimSpace(rt.TargetCurrency)
	return &rt, nil
}
