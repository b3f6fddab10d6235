package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// ListItems returns the caller's items matching the query plus the total count.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]domain.WishlistItem, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	filter, err := input.Filter()
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.items.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("wishlist.ListItems: %w", err)
	}
	return items, total, nil
}

// GetItem returns one of the caller's items.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*domain.WishlistItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	it, err := s.items.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("wishlist.GetItem: %w", err)
	}
	return it, nil
}

// CreateItem adds an item to the caller's wishlist.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.WishlistItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	it := input.item()
	it.UserID = userID

	created, err := s.items.Create(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("wishlist.CreateItem: %w", err)
	}

	s.log.InfoContext(ctx, "wishlist item created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", created.ID.String()))

	return created, nil
}

// UpdateItem applies a partial update to one of the caller's items.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.WishlistItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.items.Update(ctx, userID, id, input.Patch())
	if err != nil {
		return nil, fmt.Errorf("wishlist.UpdateItem: %w", err)
	}
	return updated, nil
}

// SetPurchased marks one of the caller's items as bought or not.
func (s *Service) SetPurchased(ctx context.Context, id uuid.UUID, purchased bool) (*domain.WishlistItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	it, err := s.items.SetPurchased(ctx, userID, id, purchased)
	if err != nil {
		return nil, fmt.Errorf("wishlist.SetPurchased: %w", err)
	}
	return it, nil
}

// DeleteItem soft-deletes one of the caller's items.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.items.SoftDelete(ctx, userID, id); err != nil {
		return fmt.Errorf("wishlist.DeleteItem: %w", err)
	}

	s.log.InfoContext(ctx, "wishlist item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", id.String()))

	return nil
}

// Stats summarizes the caller's wishlist.
func (s *Service) Stats(ctx context.Context) (*domain.WishlistStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.items.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.Stats: %w", err)
	}
	return st, nil
}

// ExtractMetadata reads title, image, description and price from a product page.
func (s *Service) ExtractMetadata(ctx context.Context, rawURL string) (*domain.ProductMetadata, error) {
	var errs domain.FieldErrors
	validateURL(&errs, "url", rawURL)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	md, err := s.metadata.Extract(ctx, rawURL)
	if err != nil {
		s.log.WarnContext(ctx, "metadata extraction failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("wishlist.ExtractMetadata: %w", err)
	}
	return md, nil
}
