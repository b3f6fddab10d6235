package domain

import "time"

// GoldPrice is a buy/sell quote from one provider for one gold product.
type GoldPrice struct {
	ID        int64
	Source    string
	Type      string
	Buy       float64
	Sell      float64
	Unit      string
	Currency  string
	FetchedAt time.Time
}

// GoldSource describes a configured provider and its last fetch time.
type GoldSource struct {
	Name        string
	Enabled     bool
	LastFetched *time.Time
}

// GoldHistoryFilter narrows a price history query.
type GoldHistoryFilter struct {
	Type   string
	Source string
	Since  time.Time
}
