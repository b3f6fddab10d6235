package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// HeartResult is the state of an item's hearts after a reaction.
type HeartResult struct {
	HeartCount int
	Hearted    bool
	Changed    bool
}

// AddHeart records the caller's heart on any live item. Hearting twice is a
// no-op; the counter moves only when the heart is new.
func (s *Service) AddHeart(ctx context.Context, itemID uuid.UUID) (*HeartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var res HeartResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reactions.LockItem(txCtx, itemID); err != nil {
			return err
		}
		n, added, err := s.reactions.AddHeart(txCtx, itemID, userID)
		if err != nil {
			return err
		}
		res = HeartResult{HeartCount: n, Hearted: true, Changed: added}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist.AddHeart: %w", err)
	}
	return &res, nil
}

// RemoveHeart withdraws the caller's heart. Removing an absent heart is a no-op.
func (s *Service) RemoveHeart(ctx context.Context, itemID uuid.UUID) (*HeartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var res HeartResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reactions.LockItem(txCtx, itemID); err != nil {
			return err
		}
		n, removed, err := s.reactions.RemoveHeart(txCtx, itemID, userID)
		if err != nil {
			return err
		}
		res = HeartResult{HeartCount: n, Hearted: false, Changed: removed}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist.RemoveHeart: %w", err)
	}
	return &res, nil
}

// ListComments returns the comments of a live item, oldest first.
func (s *Service) ListComments(ctx context.Context, itemID uuid.UUID, page domain.Page) ([]domain.WishlistComment, int, error) {
	if err := s.reactions.ItemExists(ctx, itemID); err != nil {
		return nil, 0, fmt.Errorf("wishlist.ListComments: %w", err)
	}

	comments, total, err := s.reactions.ListComments(ctx, itemID, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("wishlist.ListComments: %w", err)
	}
	return comments, total, nil
}

// AddComment posts a comment by the caller on any live item.
func (s *Service) AddComment(ctx context.Context, itemID uuid.UUID, input CommentInput) (*domain.WishlistComment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.WishlistComment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reactions.LockItem(txCtx, itemID); err != nil {
			return err
		}
		var err error
		created, err = s.reactions.CreateComment(txCtx, itemID, userID, input.Content)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "wishlist comment added",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()))

	return created, nil
}

// DeleteComment removes one of the caller's own comments. Comments by other
// users are reported as not found.
func (s *Service) DeleteComment(ctx context.Context, itemID, commentID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reactions.LockItem(txCtx, itemID); err != nil {
			return err
		}
		return s.reactions.DeleteComment(txCtx, itemID, commentID, userID)
	})
	if err != nil {
		return fmt.Errorf("wishlist.DeleteComment: %w", err)
	}
	return nil
}
