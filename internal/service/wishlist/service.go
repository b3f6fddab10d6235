package wishlist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
)

// itemRepo defines the wishlist repository interface needed by wishlist service.
type itemRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.WishlistFilter) ([]domain.WishlistItem, int, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.WishlistItem, error)
	Create(ctx context.Context, it *domain.WishlistItem) (*domain.WishlistItem, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.WishlistPatch) (*domain.WishlistItem, error)
	SetPurchased(ctx context.Context, userID, id uuid.UUID, purchased bool) (*domain.WishlistItem, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (*domain.WishlistStats, error)
}

// reactionRepo defines the heart and comment storage needed by wishlist service.
// Every method except ItemExists and ListComments must run inside RunInTx.
type reactionRepo interface {
	ItemExists(ctx context.Context, id uuid.UUID) error
	LockItem(ctx context.Context, id uuid.UUID) error
	AddHeart(ctx context.Context, itemID, userID uuid.UUID) (int, bool, error)
	RemoveHeart(ctx context.Context, itemID, userID uuid.UUID) (int, bool, error)
	ListComments(ctx context.Context, itemID uuid.UUID, page domain.Page) ([]domain.WishlistComment, int, error)
	CreateComment(ctx context.Context, itemID, userID uuid.UUID, content string) (*domain.WishlistComment, error)
	DeleteComment(ctx context.Context, itemID, commentID, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by wishlist service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// metadataExtractor reads product details from a shop page.
type metadataExtractor interface {
	Extract(ctx context.Context, rawURL string) (*domain.ProductMetadata, error)
}

// Service implements wishlist operations.
type Service struct {
	log       *slog.Logger
	items     itemRepo
	reactions reactionRepo
	tx        txManager
	metadata  metadataExtractor
}

// NewService creates a new wishlist service instance.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	reactions reactionRepo,
	tx txManager,
	metadata metadataExtractor,
) *Service {
	return &Service{
		log:       logger.With("service", "wishlist"),
		items:     items,
		reactions: reactions,
		tx:        tx,
		metadata:  metadata,
	}
}
