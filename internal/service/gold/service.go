package gold

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kadong/kadong-backend/internal/domain"
)

// Source is one upstream gold price provider.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.GoldPrice, error)
}

type priceRepo interface {
	InsertBatch(ctx context.Context, prices []domain.GoldPrice) (int, error)
	Latest(ctx context.Context, goldType string) ([]domain.GoldPrice, error)
	History(ctx context.Context, f domain.GoldHistoryFilter) ([]domain.GoldPrice, error)
	LastFetched(ctx context.Context) (map[string]time.Time, error)
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service tracks gold quotes from several sources.
type Service struct {
	log             *slog.Logger
	prices          priceRepo
	sources         []Source
	refreshInterval time.Duration
	refreshGroup    singleflight.Group
	now             func() time.Time
}

// NewService creates a gold service. Quotes older than refreshInterval are
// refreshed on read.
func NewService(logger *slog.Logger, prices priceRepo, refreshInterval time.Duration, sources ...Source) *Service {
	return &Service{
		log:             logger.With("service", "gold"),
		prices:          prices,
		sources:         sources,
		refreshInterval: refreshInterval,
		now:             time.Now,
	}
}
