package currency

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kadong/kadong-backend/internal/domain"
)

// pivot is the base used to derive pairs that are not stored directly.
const pivot = domain.CurrencyUSD

type rateProvider interface {
	Latest(ctx context.Context, base domain.Currency) ([]domain.CurrencyRate, error)
}

type rateRepo interface {
	Upsert(ctx context.Context, rates []domain.CurrencyRate) (int, error)
	ListByBase(ctx context.Context, base string) ([]domain.CurrencyRate, error)
	Get(ctx context.Context, base, target string) (*domain.CurrencyRate, error)
	OldestUpdate(ctx context.Context, base string) (*time.Time, error)
}

// Service serves exchange rates from the currency_rates cache table.
type Service struct {
	log      *slog.Logger
	rates    rateRepo
	provider rateProvider
	ttl      time.Duration
	refresh  singleflight.Group
	now      func() time.Time
}

// NewService creates a currency service. Stored rates older than ttl are
// refreshed from the provider on read.
func NewService(logger *slog.Logger, rates rateRepo, provider rateProvider, ttl time.Duration) *Service {
	return &Service{
		log:      logger.With("service", "currency"),
		rates:    rates,
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
	}
}
