// Package gold fetches gold quotes from the configured price sources.
package gold

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kadong/kadong-backend/internal/adapter/provider/fetch"
	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Source names.
const (
	SourceSJC     = "sjc"
	SourceDOJI    = "doji"
	SourceGoldAPI = "goldapi"
)

// Source is one gold price provider.
type Source struct {
	name   string
	url    string
	header http.Header
	parse  func(body []byte, now time.Time) ([]domain.GoldPrice, error)
	client *fetch.Client
	now    func() time.Time
}

// Name returns the source name.
func (s *Source) Name() string { return s.name }

// Fetch downloads and parses the current quotes.
func (s *Source) Fetch(ctx context.Context) ([]domain.GoldPrice, error) {
	body, err := s.client.Get(ctx, s.url, s.header)
	if err != nil {
		return nil, err
	}
	prices, err := s.parse(body, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.name, domain.ErrUpstream, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%s: %w: no quotes in response", s.name, domain.ErrUpstream)
	}
	for i := range prices {
		prices[i].Source = s.name
	}
	return prices, nil
}

// NewSources builds the enabled sources. Unknown names are logged and
// skipped; goldapi is skipped without an API key.
func NewSources(cfg config.GoldProviderConfig, logger *slog.Logger) []*Source {
	var out []*Source
	for _, name := range cfg.SourceList() {
		s := newSource(strings.ToLower(name), cfg, logger)
		if s == nil {
			logger.Warn("gold source disabled", slog.String("source", name))
			continue
		}
		out = append(out, s)
	}
	return out
}

func newSource(name string, cfg config.GoldProviderConfig, logger *slog.Logger) *Source {
	s := &Source{
		name:   name,
		client: fetch.New("gold."+name, cfg.Timeout, logger),
		now:    time.Now,
	}
	switch name {
	case SourceSJC:
		s.url, s.parse = cfg.SJCURL, parseSJC
	case SourceDOJI:
		s.url, s.parse = cfg.DOJIURL, parseDOJI
	case SourceGoldAPI:
		if cfg.GoldAPIKey == "" {
			return nil
		}
		s.url, s.parse = cfg.GoldAPIURL, parseGoldAPI
		s.header = http.Header{}
		s.header.Set("x-access-token", cfg.GoldAPIKey)
	default:
		return nil
	}
	return s
}

// parseSJC reads {"success":true,"data":[{"TypeName","BranchName","BuyValue","SellValue"}]}.
// Only the first branch of each type is kept.
func parseSJC(body []byte, now time.Time) ([]domain.GoldPrice, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json")
	}
	doc := gjson.ParseBytes(body)
	if s := doc.Get("success"); s.Exists() && !s.Bool() {
		return nil, fmt.Errorf("source reported failure")
	}

	seen := map[string]bool{}
	var out []domain.GoldPrice
	doc.Get("data").ForEach(func(_, v gjson.Result) bool {
		typ := strings.TrimSpace(v.Get("TypeName").String())
		if typ == "" || seen[typ] {
			return true
		}
		seen[typ] = true
		out = append(out, domain.GoldPrice{
			Type:      typ,
			Buy:       v.Get("BuyValue").Float(),
			Sell:      v.Get("SellValue").Float(),
			Unit:      "luong",
			Currency:  string(domain.CurrencyVND),
			FetchedAt: now,
		})
		return true
	})
	return out, nil
}

// parseDOJI reads {"data":[{"name","buy","sell","unit"}]}. DOJI quotes in
// thousands of VND per chi; values are normalized to VND.
func parseDOJI(body []byte, now time.Time) ([]domain.GoldPrice, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json")
	}
	var out []domain.GoldPrice
	gjson.GetBytes(body, "data").ForEach(func(_, v gjson.Result) bool {
		name := strings.TrimSpace(v.Get("name").String())
		if name == "" {
			return true
		}
		unit := v.Get("unit").String()
		if unit == "" {
			unit = "chi"
		}
		out = append(out, domain.GoldPrice{
			Type:      name,
			Buy:       v.Get("buy").Float() * 1000,
			Sell:      v.Get("sell").Float() * 1000,
			Unit:      unit,
			Currency:  string(domain.CurrencyVND),
			FetchedAt: now,
		})
		return true
	})
	return out, nil
}

// parseGoldAPI reads the goldapi.io spot quote {"metal","currency","bid","ask","timestamp"}.
func parseGoldAPI(body []byte, now time.Time) ([]domain.GoldPrice, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json")
	}
	doc := gjson.ParseBytes(body)
	if msg := doc.Get("error"); msg.Exists() {
		return nil, fmt.Errorf("source error: %s", msg.String())
	}
	bid, ask := doc.Get("bid").Float(), doc.Get("ask").Float()
	if bid == 0 && ask == 0 {
		price := doc.Get("price").Float()
		bid, ask = price, price
	}
	if bid == 0 {
		return nil, nil
	}
	fetched := now
	if ts := doc.Get("timestamp").Int(); ts > 0 {
		fetched = time.Unix(ts, 0).UTC()
	}
	return []domain.GoldPrice{{
		Type:      doc.Get("metal").String(),
		Buy:       bid,
		Sell:      ask,
		Unit:      "oz",
		Currency:  strings.ToUpper(doc.Get("currency").String()),
		FetchedAt: fetched,
	}}, nil
}
