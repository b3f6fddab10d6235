// Package weather is an OpenWeatherMap-compatible weather client.
package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kadong/kadong-backend/internal/adapter/provider/fetch"
	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Provider fetches current conditions and the 5 day / 3 hour forecast.
type Provider struct {
	cfg    config.WeatherProviderConfig
	client *fetch.Client
	now    func() time.Time
}

// NewProvider creates a weather Provider.
func NewProvider(cfg config.WeatherProviderConfig, logger *slog.Logger) *Provider {
	return &Provider{
		cfg:    cfg,
		client: fetch.New("weather", cfg.Timeout, logger),
		now:    time.Now,
	}
}

// Configured reports whether an API key is set.
func (p *Provider) Configured() bool { return p.cfg.APIKey != "" }

// Current returns current conditions for q.
func (p *Provider) Current(ctx context.Context, q domain.WeatherQuery) (*domain.WeatherReport, error) {
	body, err := p.get(ctx, "weather", q)
	if err != nil {
		return nil, err
	}
	doc := gjson.ParseBytes(body)

	cur := conditionFrom(doc)
	return &domain.WeatherReport{
		City:      doc.Get("name").String(),
		Country:   doc.Get("sys.country").String(),
		Lat:       doc.Get("coord.lat").Float(),
		Lon:       doc.Get("coord.lon").Float(),
		Timezone:  int(doc.Get("timezone").Int()),
		Current:   &cur,
		FetchedAt: p.now().UTC(),
	}, nil
}

// Forecast returns the 3-hourly forecast points for q.
func (p *Provider) Forecast(ctx context.Context, q domain.WeatherQuery) (*domain.WeatherReport, error) {
	body, err := p.get(ctx, "forecast", q)
	if err != nil {
		return nil, err
	}
	doc := gjson.ParseBytes(body)

	points := []domain.WeatherCondition{}
	doc.Get("list").ForEach(func(_, v gjson.Result) bool {
		points = append(points, conditionFrom(v))
		return true
	})

	city := doc.Get("city")
	return &domain.WeatherReport{
		City:      city.Get("name").String(),
		Country:   city.Get("country").String(),
		Lat:       city.Get("coord.lat").Float(),
		Lon:       city.Get("coord.lon").Float(),
		Timezone:  int(city.Get("timezone").Int()),
		Points:    points,
		FetchedAt: p.now().UTC(),
	}, nil
}

func (p *Provider) get(ctx context.Context, endpoint string, q domain.WeatherQuery) ([]byte, error) {
	if !p.Configured() {
		return nil, fmt.Errorf("weather: %w: api key not configured", domain.ErrUpstream)
	}

	params := url.Values{}
	if q.Lat != nil && q.Lon != nil {
		params.Set("lat", strconv.FormatFloat(*q.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(*q.Lon, 'f', -1, 64))
	} else {
		params.Set("q", q.City)
	}
	params.Set("appid", p.cfg.APIKey)
	if p.cfg.Units != "" {
		params.Set("units", p.cfg.Units)
	}
	if p.cfg.Lang != "" {
		params.Set("lang", p.cfg.Lang)
	}

	body, err := p.client.Get(ctx, p.cfg.BaseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("weather: %w: invalid json", domain.ErrUpstream)
	}
	return body, nil
}

func conditionFrom(v gjson.Result) domain.WeatherCondition {
	return domain.WeatherCondition{
		Time:        time.Unix(v.Get("dt").Int(), 0).UTC(),
		Temp:        v.Get("main.temp").Float(),
		FeelsLike:   v.Get("main.feels_like").Float(),
		TempMin:     v.Get("main.temp_min").Float(),
		TempMax:     v.Get("main.temp_max").Float(),
		Humidity:    int(v.Get("main.humidity").Int()),
		Pressure:    int(v.Get("main.pressure").Int()),
		WindSpeed:   v.Get("wind.speed").Float(),
		Clouds:      int(v.Get("clouds.all").Int()),
		Description: v.Get("weather.0.description").String(),
		Icon:        v.Get("weather.0.icon").String(),
		PrecipProb:  v.Get("pop").Float(),
	}
}
