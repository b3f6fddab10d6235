package weather

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
)

type provider interface {
	Current(ctx context.Context, q domain.WeatherQuery) (*domain.WeatherReport, error)
	Forecast(ctx context.Context, q domain.WeatherQuery) (*domain.WeatherReport, error)
}

type reportCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

type favoriteRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.WeatherFavorite, error)
	Create(ctx context.Context, f *domain.WeatherFavorite) (*domain.WeatherFavorite, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service serves weather lookups and saved locations.
type Service struct {
	log       *slog.Logger
	provider  provider
	favorites favoriteRepo
	cache     reportCache
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewService creates a weather service without a response cache.
func NewService(logger *slog.Logger, p provider, favorites favoriteRepo) *Service {
	return &Service{
		log:       logger.With("service", "weather"),
		provider:  p,
		favorites: favorites,
		now:       time.Now,
	}
}

// UseCache enables caching of provider reports for ttl.
func (s *Service) UseCache(c reportCache, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.cache = c
	s.cacheTTL = ttl
}
