package domain

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a product the user wants.
type WishlistItem struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ProductName  string
	ProductURL   string
	ImageURL     *string
	Description  *string
	Category     *WishlistCategory
	Price        *float64
	Currency     Currency
	Purchased    bool
	HeartCount   int
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// WishlistPatch holds the updatable fields of a wishlist item.
type WishlistPatch struct {
	ProductName Optional[string]
	ProductURL  Optional[string]
	ImageURL    Optional[string]
	Description Optional[string]
	Category    Optional[WishlistCategory]
	Price       Optional[float64]
	Currency    Optional[Currency]
	Purchased   Optional[bool]
}

// Sortable wishlist columns.
const (
	WishlistSortCreatedAt  = "created_at"
	WishlistSortPrice      = "price"
	WishlistSortHeartCount = "heart_count"
)

// WishlistFilter narrows a wishlist listing.
type WishlistFilter struct {
	Category  *WishlistCategory
	Purchased *bool
	Search    string
	SortBy    string
	SortOrder SortOrder
	Page      Page
}

// WishlistHeart is one user's reaction to an item.
type WishlistHeart struct {
	ItemID    uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// WishlistComment is a comment on an item.
type WishlistComment struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Content   string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// WishlistStats summarizes a user's wishlist.
type WishlistStats struct {
	Total      int
	Purchased  int
	Pending    int
	TotalValue map[Currency]float64
	ByCategory map[string]int
}

// ProductMetadata is what could be extracted from a product page.
type ProductMetadata struct {
	Title       string
	ImageURL    string
	Description string
	Price       *float64
	Currency    string
	SiteName    string
	Source      string
}
