package weather

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// ListFavorites returns the caller's saved locations.
func (s *Service) ListFavorites(ctx context.Context) ([]domain.WeatherFavorite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	favs, err := s.favorites.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("weather.ListFavorites: %w", err)
	}
	return favs, nil
}

// AddFavorite saves a location. A city already saved by the caller yields
// domain.ErrAlreadyExists.
func (s *Service) AddFavorite(ctx context.Context, input FavoriteInput) (*domain.WeatherFavorite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fav, err := s.favorites.Create(ctx, &domain.WeatherFavorite{
		UserID:  userID,
		City:    input.City,
		Country: input.Country,
		Lat:     input.Lat,
		Lon:     input.Lon,
	})
	if err != nil {
		return nil, fmt.Errorf("weather.AddFavorite: %w", err)
	}

	s.log.InfoContext(ctx, "weather favorite added",
		slog.String("user_id", userID.String()),
		slog.String("city", fav.City))

	return fav, nil
}

// DeleteFavorite removes one of the caller's saved locations.
func (s *Service) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.favorites.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("weather.DeleteFavorite: %w", err)
	}
	return nil
}
