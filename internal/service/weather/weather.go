package weather

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/kadong/kadong-backend/internal/domain"
)

// DailyForecast aggregates one local calendar day of forecast points.
type DailyForecast struct {
	Date        string  `json:"date"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Humidity    int     `json:"humidity"`
	PrecipProb  float64 `json:"precip_prob"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Forecast is a report plus its per-day summary.
type Forecast struct {
	*domain.WeatherReport
	Days []DailyForecast
}

// Current returns current conditions.
func (s *Service) Current(ctx context.Context, input QueryInput) (*domain.WeatherReport, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	report, err := s.fetch(ctx, input.cacheKey("current"), func(ctx context.Context) (*domain.WeatherReport, error) {
		return s.provider.Current(ctx, input.query())
	})
	if err != nil {
		return nil, fmt.Errorf("weather.Current: %w", err)
	}
	return report, nil
}

// Forecast returns up to days (1..7) daily summaries. The provider only
// covers five days, so fewer may be returned.
func (s *Service) Forecast(ctx context.Context, input QueryInput, days int) (*Forecast, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if days < 1 || days > MaxForecastDays {
		return nil, domain.NewValidationError("days", "must be between 1 and 7")
	}

	report, err := s.forecastReport(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("weather.Forecast: %w", err)
	}

	daily := aggregateDays(report.Points, time.FixedZone("local", report.Timezone))
	if len(daily) > days {
		daily = daily[:days]
	}
	return &Forecast{WeatherReport: report, Days: daily}, nil
}

// Hourly returns the forecast points that fall within the next hours (1..48).
func (s *Service) Hourly(ctx context.Context, input QueryInput, hours int) (*domain.WeatherReport, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if hours < 1 || hours > MaxHourlyHours {
		return nil, domain.NewValidationError("hours", "must be between 1 and 48")
	}

	report, err := s.forecastReport(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("weather.Hourly: %w", err)
	}

	until := s.now().Add(time.Duration(hours) * time.Hour)
	points := make([]domain.WeatherCondition, 0, len(report.Points))
	for _, p := range report.Points {
		if p.Time.After(until) {
			break
		}
		points = append(points, p)
	}

	out := *report
	out.Points = points
	return &out, nil
}

func (s *Service) forecastReport(ctx context.Context, input QueryInput) (*domain.WeatherReport, error) {
	return s.fetch(ctx, input.cacheKey("forecast"), func(ctx context.Context) (*domain.WeatherReport, error) {
		return s.provider.Forecast(ctx, input.query())
	})
}

// fetch reads through the cache. Cache failures are logged and bypassed.
func (s *Service) fetch(
	ctx context.Context,
	key string,
	load func(context.Context) (*domain.WeatherReport, error),
) (*domain.WeatherReport, error) {
	if s.cache != nil {
		var cached domain.WeatherReport
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.WarnContext(ctx, "weather cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		if hit {
			cached.FromCache = true
			return &cached, nil
		}
	}

	report, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, report, s.cacheTTL); err != nil {
			s.log.WarnContext(ctx, "weather cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return report, nil
}

// aggregateDays groups points by calendar day in loc. The description and
// icon come from the point closest to local noon.
func aggregateDays(points []domain.WeatherCondition, loc *time.Location) []DailyForecast {
	var (
		days           []DailyForecast
		humiditySum, n int
		noonDist       time.Duration
	)

	flush := func() {
		if n > 0 {
			days[len(days)-1].Humidity = humiditySum / n
		}
	}

	for _, p := range points {
		local := p.Time.In(loc)
		date := local.Format(time.DateOnly)

		if len(days) == 0 || days[len(days)-1].Date != date {
			flush()
			days = append(days, DailyForecast{
				Date:    date,
				TempMin: p.TempMin,
				TempMax: p.TempMax,
			})
			humiditySum, n = 0, 0
			noonDist = time.Duration(math.MaxInt64)
		}

		d := &days[len(days)-1]
		d.TempMin = min(d.TempMin, p.TempMin)
		d.TempMax = max(d.TempMax, p.TempMax)
		d.PrecipProb = max(d.PrecipProb, p.PrecipProb)
		humiditySum += p.Humidity
		n++

		noon := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, loc)
		if dist := absDuration(local.Sub(noon)); dist < noonDist {
			noonDist = dist
			d.Description = p.Description
			d.Icon = p.Icon
		}
	}
	flush()

	return days
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
