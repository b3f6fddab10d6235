// Package metadata extracts product details from a shop URL: the Shopee item
// API for Shopee links, OpenGraph and meta tags for everything else.
package metadata

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"

	"github.com/kadong/kadong-backend/internal/adapter/provider/fetch"
	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Extraction sources reported in ProductMetadata.Source.
const (
	SourceShopee    = "shopee"
	SourceOpenGraph = "opengraph"
)

// shopee prices are integers scaled by 100000.
const shopeePriceScale = 100000

const shopeeImageBase = "https://cf.shopee.vn/file/"

var (
	shopeeSlugRe = regexp.MustCompile(`-i\.(\d+)\.(\d+)`)
	shopeePathRe = regexp.MustCompile(`/product/(\d+)/(\d+)`)
)

// Extractor fetches and parses product pages.
type Extractor struct {
	cfg    config.MetadataProviderConfig
	client *fetch.Client
	log    *slog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(cfg config.MetadataProviderConfig, logger *slog.Logger) *Extractor {
	return &Extractor{
		cfg: cfg,
		client: fetch.New("metadata", cfg.Timeout, logger,
			fetch.WithUserAgent(cfg.UserAgent),
			fetch.WithMaxBytes(cfg.MaxBytes),
		),
		log: logger.With("adapter", "metadata"),
	}
}

// Extract returns what could be read from rawURL.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*domain.ProductMetadata, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, domain.NewValidationError("url", "invalid url")
	}

	if shopID, itemID, ok := ShopeeIDs(u); ok {
		md, err := e.shopee(ctx, shopID, itemID)
		if err == nil {
			return md, nil
		}
		e.log.WarnContext(ctx, "shopee api failed, falling back to page",
			slog.String("url", rawURL), slog.String("error", err.Error()))
	}

	body, err := e.client.Get(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}
	md := ParseHTML(body, u)
	if md.Title == "" && md.ImageURL == "" && md.Description == "" {
		return nil, fmt.Errorf("metadata: %w: no product metadata found", domain.ErrUpstream)
	}
	return md, nil
}

// ShopeeIDs extracts shop and item ids from a Shopee product URL.
func ShopeeIDs(u *url.URL) (shopID, itemID string, ok bool) {
	if !strings.Contains(strings.ToLower(u.Hostname()), "shopee") {
		return "", "", false
	}
	for _, re := range []*regexp.Regexp{shopeeSlugRe, shopeePathRe} {
		if m := re.FindStringSubmatch(u.Path); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

func (e *Extractor) shopee(ctx context.Context, shopID, itemID string) (*domain.ProductMetadata, error) {
	q := url.Values{"shopid": {shopID}, "itemid": {itemID}}
	body, err := e.client.Get(ctx, e.cfg.ShopeeURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("shopee: %w: invalid json", domain.ErrUpstream)
	}

	item := gjson.GetBytes(body, "data")
	if !item.Exists() || item.Type == gjson.Null {
		item = gjson.GetBytes(body, "item")
	}
	name := item.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("shopee: %w: item not found", domain.ErrUpstream)
	}

	md := &domain.ProductMetadata{
		Title:       name,
		Description: item.Get("description").String(),
		Currency:    strings.ToUpper(item.Get("currency").String()),
		SiteName:    "Shopee",
		Source:      SourceShopee,
	}
	if img := item.Get("image").String(); img != "" {
		md.ImageURL = shopeeImageBase + img
	}
	if raw := item.Get("price"); raw.Exists() && raw.Int() > 0 {
		p := float64(raw.Int()) / shopeePriceScale
		md.Price = &p
	}
	if md.Currency == "" {
		md.Currency = string(domain.CurrencyVND)
	}
	return md, nil
}

// ParseHTML reads OpenGraph, product and plain meta tags from a page. Relative
// image URLs are resolved against base.
func ParseHTML(body []byte, base *url.URL) *domain.ProductMetadata {
	meta := map[string]string{}
	var title string

	z := html.NewTokenizer(bytes.NewReader(body))
	inTitle := false
loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			break loop
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "meta":
				if !hasAttr {
					continue
				}
				var key, content string
				for {
					k, v, more := z.TagAttr()
					switch strings.ToLower(string(k)) {
					case "property", "name", "itemprop":
						if key == "" {
							key = strings.ToLower(string(v))
						}
					case "content":
						content = string(v)
					}
					if !more {
						break
					}
				}
				if key != "" && content != "" {
					if _, dup := meta[key]; !dup {
						meta[key] = strings.TrimSpace(content)
					}
				}
			case "title":
				inTitle = title == ""
			case "body":
				// Meta tags live in <head>.
				break loop
			}
		case html.TextToken:
			if inTitle {
				title = strings.TrimSpace(string(z.Text()))
				inTitle = false
			}
		case html.EndTagToken:
			inTitle = false
		}
	}

	md := &domain.ProductMetadata{
		Title:       first(meta["og:title"], meta["twitter:title"], title),
		Description: first(meta["og:description"], meta["twitter:description"], meta["description"]),
		SiteName:    first(meta["og:site_name"], base.Hostname()),
		Currency:    strings.ToUpper(first(meta["product:price:currency"], meta["og:price:currency"], meta["pricecurrency"])),
		Source:      SourceOpenGraph,
	}

	if img := first(meta["og:image"], meta["og:image:url"], meta["twitter:image"]); img != "" {
		if ref, err := url.Parse(img); err == nil {
			md.ImageURL = base.ResolveReference(ref).String()
		}
	}

	if raw := first(meta["product:price:amount"], meta["og:price:amount"], meta["price"]); raw != "" {
		if p, ok := parsePrice(raw); ok {
			md.Price = &p
		}
	}
	return md
}

// parsePrice accepts "1299000", "1,299,000", "1.299.000" and "12.99".
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ".") > 1 {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.ReplaceAll(s, ",", "")
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || p < 0 {
		return 0, false
	}
	return p, true
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
