package domain

import "time"

// CurrencyRate is a cached exchange rate for a currency pair.
type CurrencyRate struct {
	BaseCurrency   string
	TargetCurrency string
	Rate           float64
	Source         string
	LastUpdated    time.Time
}

// Conversion is the result of converting an amount between currencies.
type Conversion struct {
	From        Currency
	To          Currency
	Amount      float64
	Rate        float64
	Result      float64
	LastUpdated time.Time
}
