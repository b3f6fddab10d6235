package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/event"
)

// Response bodies. Domain types carry no JSON tags; these structs fix the
// wire shape of the API.

type userResponse struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	EmailVerified bool            `json:"email_verified"`
	Preferences   json.RawMessage `json:"preferences"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	prefs := u.Preferences
	if len(prefs) == 0 {
		prefs = json.RawMessage(`{}`)
	}
	return userResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role.String(),
		EmailVerified: u.EmailVerified,
		Preferences:   prefs,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type noteResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color.String(),
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type eventResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	EventDate      time.Time  `json:"event_date"`
	Recurring      *string    `json:"recurring"`
	Timezone       string     `json:"timezone"`
	Color          string     `json:"color"`
	NextOccurrence time.Time  `json:"next_occurrence"`
	DaysRemaining  int        `json:"days_remaining"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

func toEventResponse(v *event.EventView) eventResponse {
	var recurring *string
	if v.Recurring != nil {
		s := v.Recurring.String()
		recurring = &s
	}
	return eventResponse{
		ID:             v.ID,
		UserID:         v.UserID,
		Title:          v.Title,
		Description:    v.Description,
		EventDate:      v.EventDate,
		Recurring:      recurring,
		Timezone:       v.Timezone,
		Color:          v.Color.String(),
		NextOccurrence: v.NextOccurrence,
		DaysRemaining:  v.DaysRemaining,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		DeletedAt:      v.DeletedAt,
	}
}

type wishlistItemResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ProductName  string    `json:"product_name"`
	ProductURL   string    `json:"product_url"`
	ImageURL     *string   `json:"image_url"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Price        *float64  `json:"price"`
	Currency     string    `json:"currency"`
	Purchased    bool      `json:"purchased"`
	HeartCount   int       `json:"heart_count"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toWishlistItemResponse(it *domain.WishlistItem) wishlistItemResponse {
	var category *string
	if it.Category != nil {
		s := it.Category.String()
		category = &s
	}
	return wishlistItemResponse{
		ID:           it.ID,
		UserID:       it.UserID,
		ProductName:  it.ProductName,
		ProductURL:   it.ProductURL,
		ImageURL:     it.ImageURL,
		Description:  it.Description,
		Category:     category,
		Price:        it.Price,
		Currency:     it.Currency.String(),
		Purchased:    it.Purchased,
		HeartCount:   it.HeartCount,
		CommentCount: it.CommentCount,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

type wishlistStatsResponse struct {
	Total      int                `json:"total"`
	Purchased  int                `json:"purchased"`
	Pending    int                `json:"pending"`
	TotalValue map[string]float64 `json:"total_value"`
	ByCategory map[string]int     `json:"by_category"`
}

func toWishlistStatsResponse(s *domain.WishlistStats) wishlistStatsResponse {
	value := make(map[string]float64, len(s.TotalValue))
	for cur, v := range s.TotalValue {
		value[cur.String()] = v
	}
	byCategory := s.ByCategory
	if byCategory == nil {
		byCategory = map[string]int{}
	}
	return wishlistStatsResponse{
		Total:      s.Total,
		Purchased:  s.Purchased,
		Pending:    s.Pending,
		TotalValue: value,
		ByCategory: byCategory,
	}
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentResponse(c *domain.WishlistComment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		ItemID:    c.ItemID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type metadataResponse struct {
	Title       string   `json:"title"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
	SiteName    string   `json:"site_name"`
	Source      string   `json:"source"`
}

func toMetadataResponse(m *domain.ProductMetadata) metadataResponse {
	return metadataResponse{
		Title:       m.Title,
		ImageURL:    m.ImageURL,
		Description: m.Description,
		Price:       m.Price,
		Currency:    m.Currency,
		SiteName:    m.SiteName,
		Source:      m.Source,
	}
}

type weddingURLResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	BaseURL   string     `json:"base_url"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func toWeddingURLResponse(u *domain.WeddingURL) weddingURLResponse {
	return weddingURLResponse{
		ID:        u.ID,
		UserID:    u.UserID,
		BaseURL:   u.BaseURL,
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}

type feedbackResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id"`
	Message   string     `json:"message"`
	Rating    *int       `json:"rating"`
	CreatedAt time.Time  `json:"created_at"`
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt,
	}
}

type favoriteResponse struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Country   *string   `json:"country"`
	Lat       *float64  `json:"lat"`
	Lon       *float64  `json:"lon"`
	CreatedAt time.Time `json:"created_at"`
}

func toFavoriteResponse(f *domain.WeatherFavorite) favoriteResponse {
	return favoriteResponse{
		ID:        f.ID,
		City:      f.City,
		Country:   f.Country,
		Lat:       f.Lat,
		Lon:       f.Lon,
		CreatedAt: f.CreatedAt,
	}
}

type goldPriceResponse struct {
	Source    string    `json:"source"`
	Type      string    `json:"type"`
	Buy       float64   `json:"buy"`
	Sell      float64   `json:"sell"`
	Unit      string    `json:"unit"`
	Currency  string    `json:"currency"`
	FetchedAt time.Time `json:"fetched_at"`
}

func toGoldPriceResponse(p *domain.GoldPrice) goldPriceResponse {
	return goldPriceResponse{
		Source:    p.Source,
		Type:      p.Type,
		Buy:       p.Buy,
		Sell:      p.Sell,
		Unit:      p.Unit,
		Currency:  p.Currency,
		FetchedAt: p.FetchedAt,
	}
}

type goldSourceResponse struct {
	Name        string     `json:"name"`
	Enabled     bool       `json:"enabled"`
	LastFetched *time.Time `json:"last_fetched"`
}

type rateResponse struct {
	Base        string    `json:"base"`
	Target      string    `json:"target"`
	Rate        float64   `json:"rate"`
	Source      string    `json:"source"`
	LastUpdated time.Time `json:"last_updated"`
}

type conversionResponse struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Amount      float64   `json:"amount"`
	Rate        float64   `json:"rate"`
	Result      float64   `json:"result"`
	LastUpdated time.Time `json:"last_updated"`
}

// mapSlice converts a slice element by element.
func mapSlice[T, R any](in []T, f func(*T) R) []R {
	out := make([]R, 0, len(in))
	for i := range in {
		out = append(out, f(&in[i]))
	}
	return out
}
