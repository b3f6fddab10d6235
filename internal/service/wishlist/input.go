package wishlist

import (
	"strings"
	"unicode/utf8"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/validate"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const (
	maxProductNameLength = 255
	maxURLLength         = 2000
	maxDescriptionLength = 1000
	maxCommentLength     = 1000
	maxSearchLength      = 100

	// NUMERIC(15,2) upper bound.
	maxPrice = 1e13
)

// CreateItemInput holds parameters for adding a wishlist item.
type CreateItemInput struct {
	ProductName string
	ProductURL  string
	ImageURL    *string
	Description *string
	Category    *string
	Price       *float64
	Currency    string
	Purchased   bool
}

// Normalize sanitizes text fields and applies defaults.
func (i *CreateItemInput) Normalize() {
	i.ProductName = sanitize.ProductName(i.ProductName, maxProductNameLength)
	i.ProductURL = strings.TrimSpace(i.ProductURL)
	i.ImageURL = trimmedOrNil(i.ImageURL)
	if i.Description != nil {
		d := sanitize.Comment(*i.Description, maxDescriptionLength)
		i.Description = &d
		if d == "" {
			i.Description = nil
		}
	}
	if i.Category != nil {
		c := strings.ToLower(strings.TrimSpace(*i.Category))
		i.Category = &c
		if c == "" {
			i.Category = nil
		}
	}
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))
	if i.Currency == "" {
		i.Currency = domain.DefaultCurrency.String()
	}
}

// Validate validates the create input.
func (i CreateItemInput) Validate() error {
	var errs domain.FieldErrors

	if i.ProductName == "" {
		errs.Add("product_name", "required")
	}
	if i.ProductURL == "" {
		errs.Add("product_url", "required")
	} else {
		validateURL(&errs, "product_url", i.ProductURL)
	}
	if i.ImageURL != nil {
		validateURL(&errs, "image_url", *i.ImageURL)
	}
	if !validate.Category(i.Category) {
		errs.Add("category", "invalid category")
	}
	validatePrice(&errs, i.Price)
	if !validate.Currency(i.Currency) {
		errs.Add("currency", "unsupported currency")
	}

	return errs.Err()
}

// item builds the domain item; the caller sets the owner.
func (i CreateItemInput) item() *domain.WishlistItem {
	it := &domain.WishlistItem{
		ProductName: i.ProductName,
		ProductURL:  i.ProductURL,
		ImageURL:    i.ImageURL,
		Description: i.Description,
		Price:       i.Price,
		Currency:    domain.Currency(i.Currency),
		Purchased:   i.Purchased,
	}
	if i.Category != nil {
		c := domain.WishlistCategory(*i.Category)
		it.Category = &c
	}
	return it
}

// UpdateItemInput holds the fields of a partial item update. Image URL,
// description, category and price may be cleared with an explicit null.
type UpdateItemInput struct {
	ProductName domain.Optional[string]
	ProductURL  domain.Optional[string]
	ImageURL    domain.Optional[string]
	Description domain.Optional[string]
	Category    domain.Optional[string]
	Price       domain.Optional[float64]
	Currency    domain.Optional[string]
	Purchased   domain.Optional[bool]
}

// Normalize sanitizes the fields that are present.
func (i *UpdateItemInput) Normalize() {
	if i.ProductName.Set && !i.ProductName.Null {
		i.ProductName.Value = sanitize.ProductName(i.ProductName.Value, maxProductNameLength)
	}
	if i.ProductURL.Set && !i.ProductURL.Null {
		i.ProductURL.Value = strings.TrimSpace(i.ProductURL.Value)
	}
	if i.ImageURL.Set && !i.ImageURL.Null {
		i.ImageURL.Value = strings.TrimSpace(i.ImageURL.Value)
		if i.ImageURL.Value == "" {
			i.ImageURL = domain.Null[string]()
		}
	}
	if i.Description.Set && !i.Description.Null {
		i.Description.Value = sanitize.Comment(i.Description.Value, maxDescriptionLength)
		if i.Description.Value == "" {
			i.Description = domain.Null[string]()
		}
	}
	if i.Category.Set && !i.Category.Null {
		i.Category.Value = strings.ToLower(strings.TrimSpace(i.Category.Value))
		if i.Category.Value == "" {
			i.Category = domain.Null[string]()
		}
	}
	if i.Currency.Set && !i.Currency.Null {
		i.Currency.Value = strings.ToUpper(strings.TrimSpace(i.Currency.Value))
	}
}

// Validate validates the update input.
func (i UpdateItemInput) Validate() error {
	if !i.ProductName.Set && !i.ProductURL.Set && !i.ImageURL.Set && !i.Description.Set &&
		!i.Category.Set && !i.Price.Set && !i.Currency.Set && !i.Purchased.Set {
		return domain.ErrNoFieldsToUpdate
	}

	var errs domain.FieldErrors

	if i.ProductName.Set && (i.ProductName.Null || i.ProductName.Value == "") {
		errs.Add("product_name", "required")
	}
	if i.ProductURL.Set {
		if i.ProductURL.Null || i.ProductURL.Value == "" {
			errs.Add("product_url", "required")
		} else {
			validateURL(&errs, "product_url", i.ProductURL.Value)
		}
	}
	if i.ImageURL.Set && !i.ImageURL.Null {
		validateURL(&errs, "image_url", i.ImageURL.Value)
	}
	if i.Category.Set && !i.Category.Null && !validate.Category(&i.Category.Value) {
		errs.Add("category", "invalid category")
	}
	if i.Price.Set && !i.Price.Null {
		validatePrice(&errs, &i.Price.Value)
	}
	if i.Currency.Set && (i.Currency.Null || !validate.Currency(i.Currency.Value)) {
		errs.Add("currency", "unsupported currency")
	}
	if i.Purchased.Set && i.Purchased.Null {
		errs.Add("purchased", "must be a boolean")
	}

	return errs.Err()
}

// Patch converts the input into a repository patch.
func (i UpdateItemInput) Patch() domain.WishlistPatch {
	return domain.WishlistPatch{
		ProductName: i.ProductName,
		ProductURL:  i.ProductURL,
		ImageURL:    i.ImageURL,
		Description: i.Description,
		Category:    convert(i.Category, func(s string) domain.WishlistCategory { return domain.WishlistCategory(s) }),
		Price:       i.Price,
		Currency:    convert(i.Currency, func(s string) domain.Currency { return domain.Currency(s) }),
		Purchased:   i.Purchased,
	}
}

// ListItemsInput holds the raw list query. Empty strings mean "not given".
type ListItemsInput struct {
	Category  string
	Purchased *bool
	Search    string
	SortBy    string
	Order     string
	Page      domain.Page
}

// Filter validates the query and converts it into a repository filter.
func (i ListItemsInput) Filter() (domain.WishlistFilter, error) {
	var errs domain.FieldErrors

	f := domain.WishlistFilter{
		Purchased: i.Purchased,
		Search:    sanitize.SearchQuery(i.Search, maxSearchLength),
		SortBy:    domain.WishlistSortCreatedAt,
		SortOrder: domain.SortDesc,
		Page:      i.Page.Normalize(),
	}

	if c := strings.ToLower(strings.TrimSpace(i.Category)); c != "" {
		cat := domain.WishlistCategory(c)
		if !cat.IsValid() {
			errs.Add("category", "invalid category")
		}
		f.Category = &cat
	}

	switch i.SortBy {
	case "":
	case domain.WishlistSortCreatedAt, domain.WishlistSortPrice, domain.WishlistSortHeartCount:
		f.SortBy = i.SortBy
	default:
		errs.Add("sort", "must be one of created_at, price, heart_count")
	}

	if i.Order != "" {
		o := domain.SortOrder(strings.ToLower(i.Order))
		if !o.IsValid() {
			errs.Add("order", "must be asc or desc")
		}
		f.SortOrder = o
	}

	return f, errs.Err()
}

// CommentInput holds the body of a new comment.
type CommentInput struct {
	Content string
}

// Normalize sanitizes the comment text.
func (i *CommentInput) Normalize() {
	i.Content = sanitize.Comment(i.Content, maxCommentLength)
}

// Validate rejects comments that are empty after sanitizing.
func (i CommentInput) Validate() error {
	if i.Content == "" {
		return domain.NewValidationError("content", "required")
	}
	return nil
}

func validateURL(errs *domain.FieldErrors, field, u string) {
	switch {
	case utf8.RuneCountInString(u) > maxURLLength:
		errs.Add(field, "must be at most 2000 characters")
	case !validate.URL(u):
		errs.Add(field, "must be an http(s) URL")
	}
}

func validatePrice(errs *domain.FieldErrors, p *float64) {
	switch {
	case !validate.Price(p):
		errs.Add("price", "must be a non-negative number")
	case p != nil && *p >= maxPrice:
		errs.Add("price", "is too large")
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func convert[T, U any](o domain.Optional[T], f func(T) U) domain.Optional[U] {
	out := domain.Optional[U]{Set: o.Set, Null: o.Null}
	if o.Set && !o.Null {
		out.Value = f(o.Value)
	}
	return out
}
