package currency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/kadong/kadong-backend/internal/domain"
)

// Refresh pulls the latest rates for base and upserts them.
func (s *Service) Refresh(ctx context.Context, base domain.Currency) (int, error) {
	rates, err := s.provider.Latest(ctx, base)
	if err != nil {
		return 0, fmt.Errorf("currency.Refresh %s: %w", base, err)
	}

	n, err := s.rates.Upsert(ctx, rates)
	if err != nil {
		return 0, fmt.Errorf("currency.Refresh %s: %w", base, err)
	}

	s.log.InfoContext(ctx, "currency rates refreshed",
		slog.String("base", base.String()),
		slog.Int("pairs", n))

	return n, nil
}

// Rates returns every stored rate for base (default USD), refreshing them
// first when they are older than the TTL.
func (s *Service) Rates(ctx context.Context, base string) ([]domain.CurrencyRate, error) {
	if base == "" {
		base = pivot.String()
	}
	cur, ok := domain.ParseCurrency(base)
	if !ok {
		return nil, domain.NewValidationError("base", "unsupported currency")
	}

	if err := s.ensureFresh(ctx, cur); err != nil {
		return nil, fmt.Errorf("currency.Rates: %w", err)
	}

	rates, err := s.rates.ListByBase(ctx, cur.String())
	if err != nil {
		return nil, fmt.Errorf("currency.Rates: %w", err)
	}
	return rates, nil
}

// ConvertInput is an amount to convert between two currencies.
type ConvertInput struct {
	From   string
	To     string
	Amount float64
}

// Convert converts Amount using the direct pair, its inverse, or a cross
// rate through USD, in that order.
func (s *Service) Convert(ctx context.Context, input ConvertInput) (*domain.Conversion, error) {
	var errs domain.FieldErrors

	from, ok := domain.ParseCurrency(input.From)
	if !ok {
		errs.Add("from", "unsupported currency")
	}
	to, ok := domain.ParseCurrency(input.To)
	if !ok {
		errs.Add("to", "unsupported currency")
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount < 0 {
		errs.Add("amount", "must be a non-negative number")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	conv := &domain.Conversion{From: from, To: to, Amount: input.Amount, Rate: 1, LastUpdated: s.now().UTC()}
	if from != to {
		rate, err := s.rate(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("currency.Convert: %w", err)
		}
		conv.Rate = rate.Rate
		conv.LastUpdated = rate.LastUpdated
	}
	conv.Result = conv.Amount * conv.Rate

	return conv, nil
}

func (s *Service) rate(ctx context.Context, from, to domain.Currency) (*domain.CurrencyRate, error) {
	freshErr := s.ensureFresh(ctx, from)

	direct, err := s.rates.Get(ctx, from.String(), to.String())
	if err == nil {
		return direct, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	inverse, err := s.rates.Get(ctx, to.String(), from.String())
	if err == nil {
		return &domain.CurrencyRate{
			BaseCurrency:   from.String(),
			TargetCurrency: to.String(),
			Rate:           1 / inverse.Rate,
			Source:         inverse.Source,
			LastUpdated:    inverse.LastUpdated,
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	cross, err := s.crossRate(ctx, from, to)
	if err != nil && freshErr != nil && errors.Is(err, domain.ErrNotFound) {
		return nil, freshErr
	}
	return cross, err
}

func (s *Service) crossRate(ctx context.Context, from, to domain.Currency) (*domain.CurrencyRate, error) {
	if from != pivot {
		if err := s.ensureFresh(ctx, pivot); err != nil {
			s.log.WarnContext(ctx, "pivot rates unavailable", slog.String("error", err.Error()))
		}
	}

	legFrom, err := s.pivotLeg(ctx, from)
	if err != nil {
		return nil, err
	}
	legTo, err := s.pivotLeg(ctx, to)
	if err != nil {
		return nil, err
	}

	updated := legFrom.LastUpdated
	if legTo.LastUpdated.Before(updated) {
		updated = legTo.LastUpdated
	}

	return &domain.CurrencyRate{
		BaseCurrency:   from.String(),
		TargetCurrency: to.String(),
		Rate:           legTo.Rate / legFrom.Rate,
		Source:         legTo.Source,
		LastUpdated:    updated,
	}, nil
}

// pivotLeg returns USD->c, with rate 1 for USD itself.
func (s *Service) pivotLeg(ctx context.Context, c domain.Currency) (*domain.CurrencyRate, error) {
	if c == pivot {
		return &domain.CurrencyRate{Rate: 1, LastUpdated: s.now().UTC()}, nil
	}
	leg, err := s.rates.Get(ctx, pivot.String(), c.String())
	if err != nil {
		return nil, fmt.Errorf("rate %s/%s: %w", pivot, c, err)
	}
	return leg, nil
}

// ensureFresh refreshes base when its oldest stored rate is older than the
// TTL. A failed refresh is tolerated when stale rates exist.
func (s *Service) ensureFresh(ctx context.Context, base domain.Currency) error {
	oldest, err := s.rates.OldestUpdate(ctx, base.String())
	if err != nil {
		return err
	}
	if oldest != nil && s.now().Sub(*oldest) < s.ttl {
		return nil
	}

	_, err, _ = s.refresh.Do(base.String(), func() (any, error) {
		return s.Refresh(context.WithoutCancel(ctx), base)
	})
	if err == nil {
		return nil
	}
	if oldest != nil {
		s.log.WarnContext(ctx, "serving stale currency rates",
			slog.String("base", base.String()),
			slog.String("error", err.Error()))
		return nil
	}
	return err
}
