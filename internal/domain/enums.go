package domain

import "strings"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
	UserRoleGuest UserRole = "guest"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleGuest:
		return true
	}
	return false
}

// IsAdmin returns true if the role grants admin access.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// Currency is an ISO 4217 code supported for wishlist prices and conversion.
type Currency string

const (
	CurrencyVND Currency = "VND"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyJPY Currency = "JPY"
)

// DefaultCurrency is used when a price is given without a currency.
const DefaultCurrency = CurrencyVND

func (c Currency) String() string { return string(c) }

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyVND, CurrencyUSD, CurrencyEUR, CurrencyJPY:
		return true
	}
	return false
}

// ParseCurrency upper-cases s and reports whether it is supported.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// AllCurrencies lists the supported currencies in display order.
func AllCurrencies() []Currency {
	return []Currency{CurrencyVND, CurrencyUSD, CurrencyEUR, CurrencyJPY}
}

// WishlistCategory is one of the fixed wishlist categories.
type WishlistCategory string

const (
	CategoryElectronics WishlistCategory = "electronics"
	CategoryFashion     WishlistCategory = "fashion"
	CategoryBeauty      WishlistCategory = "beauty"
	CategoryHome        WishlistCategory = "home"
	CategoryBooks       WishlistCategory = "books"
	CategorySports      WishlistCategory = "sports"
	CategoryToys        WishlistCategory = "toys"
	CategoryFood        WishlistCategory = "food"
	CategoryTravel      WishlistCategory = "travel"
	CategoryOther       WishlistCategory = "other"
)

func (c WishlistCategory) String() string { return string(c) }

func (c WishlistCategory) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategoryBeauty, CategoryHome, CategoryBooks,
		CategorySports, CategoryToys, CategoryFood, CategoryTravel, CategoryOther:
		return true
	}
	return false
}

// Color is the display color of a note or event.
type Color string

const (
	ColorPink   Color = "pink"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorGray   Color = "gray"
	ColorWhite  Color = "white"
)

// DefaultColor is applied when a note or event is created without a color.
const DefaultColor = ColorPink

func (c Color) String() string { return string(c) }

func (c Color) IsValid() bool {
	switch c {
	case ColorPink, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorOrange, ColorGray, ColorWhite:
		return true
	}
	return false
}

// Recurrence describes how a countdown event repeats.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

func (r Recurrence) String() string { return string(r) }

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// SortOrder is a list ordering direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool { return o == SortAsc || o == SortDesc }
