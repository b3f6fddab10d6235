// Package currency fetches exchange rates from an open.er-api.com compatible
// endpoint.
package currency

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

// SourceName is stored with every rate.
const SourceName = "open.er-api"

// Provider fetches the latest rates for a base currency.
type Provider struct {
	cfg    config.CurrencyProviderConfig
	client *fetch.Client
	now    func() time.Time
}

// NewProvider creates a currency Provider.
func NewProvider(cfg config.CurrencyProviderConfig, logger *slog.Logger) *Provider {
	return &Provider{
		cfg:    cfg,
		client: fetch.New("currency", cfg.Timeout, logger),
		now:    time.Now,
	}
}

// Latest returns the rates from base to every supported currency.
func (p *Provider) Latest(ctx context.Context, base domain.Currency) ([]domain.CurrencyRate, error) {
	var header http.Header
	if p.cfg.APIKey != "" {
		header = http.Header{}
		header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	body, err := p.client.Get(ctx, strings.TrimRight(p.cfg.BaseURL, "/")+"/"+string(base), header)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("currency: %w: invalid json", domain.ErrUpstream)
	}

	doc := gjson.ParseBytes(body)
	if res := doc.Get("result"); res.Exists() && res.String() != "success" {
		return nil, fmt.Errorf("currency: %w: %s", domain.ErrUpstream, doc.Get("error-type").String())
	}

	updated := p.now().UTC()
	if ts := doc.Get("time_last_update_unix").Int(); ts > 0 {
		updated = time.Unix(ts, 0).UTC()
	}

	rates := doc.Get("rates")
	var out []domain.CurrencyRate
	for _, target := range domain.AllCurrencies() {
		if target == base {
			continue
		}
		v := rates.Get(string(target))
		if !v.Exists() || v.Float() <= 0 {
			continue
		}
		out = append(out, domain.CurrencyRate{
			BaseCurrency:   string(base),
			TargetCurrency: string(target),
			Rate:           v.Float(),
			Source:         SourceName,
			LastUpdated:    updated,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("currency: %w: no supported rates for %s", domain.ErrUpstream, base)
	}
	return out, nil
}
