package rest

import (
	"context"
	"net/http"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/currency"
	"github.com/kadong/kadong-backend/internal/service/gold"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

type goldService interface {
	Latest(ctx context.Context, goldType string) ([]domain.GoldPrice, error)
	History(ctx context.Context, input gold.HistoryInput) ([]domain.GoldPrice, error)
	Sources(ctx context.Context) ([]domain.GoldSource, error)
}

type currencyService interface {
	Rates(ctx context.Context, base string) ([]domain.CurrencyRate, error)
	Convert(ctx context.Context, input currency.ConvertInput) (*domain.Conversion, error)
}

// MarketHandler serves the read-mostly market data under /api/gold and
// /api/currency.
type MarketHandler struct {
	gold     goldService
	currency currencyService
	errs     *respond.Errors
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(gold goldService, currency currencyService, errs *respond.Errors) *MarketHandler {
	return &MarketHandler{gold: gold, currency: currency, errs: errs}
}

type convertRequest struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Amount *float64 `json:"amount"`
}

// GoldLatest handles GET /api/gold/latest?type=.
func (h *MarketHandler) GoldLatest(w http.ResponseWriter, r *http.Request) {
	prices, err := h.gold.Latest(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(prices, toGoldPriceResponse), len(prices))
}

// GoldHistory handles GET /api/gold/history?type=&source=&days=.
func (h *MarketHandler) GoldHistory(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	q := r.URL.Query()
	prices, err := h.gold.History(r.Context(), gold.HistoryInput{
		Type:   q.Get("type"),
		Source: q.Get("source"),
		Days:   days,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(prices, toGoldPriceResponse), len(prices))
}

// GoldSources handles GET /api/gold/sources.
func (h *MarketHandler) GoldSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.gold.Sources(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(sources, func(s *domain.GoldSource) goldSourceResponse {
		return goldSourceResponse{Name: s.Name, Enabled: s.Enabled, LastFetched: s.LastFetched}
	}), len(sources))
}

// Rates handles GET /api/currency/rates?base=.
func (h *MarketHandler) Rates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.currency.Rates(r.Context(), r.URL.Query().Get("base"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(rates, func(c *domain.CurrencyRate) rateResponse {
		return rateResponse{
			Base:        c.BaseCurrency,
			Target:      c.TargetCurrency,
			Rate:        c.Rate,
			Source:      c.Source,
			LastUpdated: c.LastUpdated,
		}
	}), len(rates))
}

// Convert handles POST /api/currency/convert.
func (h *MarketHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Amount == nil {
		h.errs.Write(w, r, domain.NewValidationError("amount", "required"))
		return
	}

	conv, err := h.currency.Convert(r.Context(), currency.ConvertInput{
		From:   req.From,
		To:     req.To,
		Amount: *req.Amount,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, conversionResponse{
		From:        conv.From.String(),
		To:          conv.To.String(),
		Amount:      conv.Amount,
		Rate:        conv.Rate,
		Result:      conv.Result,
		LastUpdated: conv.LastUpdated,
	})
}
