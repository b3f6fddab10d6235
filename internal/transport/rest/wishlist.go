package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/wishlist"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

type wishlistService interface {
	ListItems(ctx context.Context, input wishlist.ListItemsInput) ([]domain.WishlistItem, int, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.WishlistItem, error)
	CreateItem(ctx context.Context, input wishlist.CreateItemInput) (*domain.WishlistItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input wishlist.UpdateItemInput) (*domain.WishlistItem, error)
	SetPurchased(ctx context.Context, id uuid.UUID, purchased bool) (*domain.WishlistItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.WishlistStats, error)
	ExtractMetadata(ctx context.Context, rawURL string) (*domain.ProductMetadata, error)
	AddHeart(ctx context.Context, itemID uuid.UUID) (*wishlist.HeartResult, error)
	RemoveHeart(ctx context.Context, itemID uuid.UUID) (*wishlist.HeartResult, error)
	ListComments(ctx context.Context, itemID uuid.UUID, page domain.Page) ([]domain.WishlistComment, int, error)
	AddComment(ctx context.Context, itemID uuid.UUID, input wishlist.CommentInput) (*domain.WishlistComment, error)
	DeleteComment(ctx context.Context, itemID, commentID uuid.UUID) error
}

// WishlistHandler serves /api/wishlist, including hearts and comments.
type WishlistHandler struct {
	svc  wishlistService
	errs *respond.Errors
}

// NewWishlistHandler creates a WishlistHandler.
func NewWishlistHandler(svc wishlistService, errs *respond.Errors) *WishlistHandler {
	return &WishlistHandler{svc: svc, errs: errs}
}

type createItemRequest struct {
	UserID      *string  `json:"user_id"`
	ProductName string   `json:"product_name"`
	ProductURL  string   `json:"product_url"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
	Purchased   bool     `json:"purchased"`
}

type updateItemRequest struct {
	ProductName domain.Optional[string]  `json:"product_name"`
	ProductURL  domain.Optional[string]  `json:"product_url"`
	ImageURL    domain.Optional[string]  `json:"image_url"`
	Description domain.Optional[string]  `json:"description"`
	Category    domain.Optional[string]  `json:"category"`
	Price       domain.Optional[float64] `json:"price"`
	Currency    domain.Optional[string]  `json:"currency"`
	Purchased   domain.Optional[bool]    `json:"purchased"`
}

type purchasedRequest struct {
	Purchased *bool `json:"purchased"`
}

type extractMetadataRequest struct {
	URL string `json:"url"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type heartResponse struct {
	HeartCount int  `json:"heart_count"`
	Hearted    bool `json:"hearted"`
	Changed    bool `json:"changed"`
}

// List handles GET /api/wishlist.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	purchased, err := queryBool(r, "purchased")
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	q := r.URL.Query()
	items, total, err := h.svc.ListItems(r.Context(), wishlist.ListItemsInput{
		Category:  q.Get("category"),
		Purchased: purchased,
		Search:    q.Get("search"),
		SortBy:    q.Get("sort"),
		Order:     q.Get("order"),
		Page:      page,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(items, toWishlistItemResponse), total)
}

// Stats handles GET /api/wishlist/stats.
func (h *WishlistHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toWishlistStatsResponse(stats))
}

// Get handles GET /api/wishlist/{id}.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toWishlistItemResponse(item))
}

// Create handles POST /api/wishlist.
func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	r = withBodyUser(r, req.UserID)

	item, err := h.svc.CreateItem(r.Context(), wishlist.CreateItemInput{
		ProductName: req.ProductName,
		ProductURL:  req.ProductURL,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Currency:    req.Currency,
		Purchased:   req.Purchased,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toWishlistItemResponse(item))
}

// Update handles PUT /api/wishlist/{id}.
func (h *WishlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), id, wishlist.UpdateItemInput{
		ProductName: req.ProductName,
		ProductURL:  req.ProductURL,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Currency:    req.Currency,
		Purchased:   req.Purchased,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toWishlistItemResponse(item))
}

// SetPurchased handles PATCH /api/wishlist/{id}/purchased.
func (h *WishlistHandler) SetPurchased(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req purchasedRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Purchased == nil {
		h.errs.Write(w, r, domain.NewValidationError("purchased", "required"))
		return
	}

	item, err := h.svc.SetPurchased(r.Context(), id, *req.Purchased)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toWishlistItemResponse(item))
}

// Delete handles DELETE /api/wishlist/{id}.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Item deleted")
}

// ExtractMetadata handles POST /api/wishlist/extract-metadata.
func (h *WishlistHandler) ExtractMetadata(w http.ResponseWriter, r *http.Request) {
	var req extractMetadataRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	meta, err := h.svc.ExtractMetadata(r.Context(), req.URL)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toMetadataResponse(meta))
}

// AddHeart handles POST /api/wishlist/{id}/hearts.
func (h *WishlistHandler) AddHeart(w http.ResponseWriter, r *http.Request) {
	h.heart(w, r, h.svc.AddHeart)
}

// RemoveHeart handles DELETE /api/wishlist/{id}/hearts.
func (h *WishlistHandler) RemoveHeart(w http.ResponseWriter, r *http.Request) {
	h.heart(w, r, h.svc.RemoveHeart)
}

func (h *WishlistHandler) heart(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*wishlist.HeartResult, error)) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	res, err := op(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, heartResponse{
		HeartCount: res.HeartCount,
		Hearted:    res.Hearted,
		Changed:    res.Changed,
	})
}

// ListComments handles GET /api/wishlist/{id}/comments.
func (h *WishlistHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	page, err := pageParams(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	comments, total, err := h.svc.ListComments(r.Context(), id, page)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(comments, toCommentResponse), total)
}

// AddComment handles POST /api/wishlist/{id}/comments.
func (h *WishlistHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), id, wishlist.CommentInput{Content: req.Content})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toCommentResponse(c))
}

// DeleteComment handles DELETE /api/wishlist/{id}/comments/{commentId}.
func (h *WishlistHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	commentID, ok := pathUUID(w, r, "commentId")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id, commentID); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Comment deleted")
}
