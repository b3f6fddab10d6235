package gold

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/kadong/kadong-backend/internal/domain"
)

const (
	DefaultHistoryDays = 30
	MaxHistoryDays     = 365

	maxFilterLength = 100
)

// errNoSources is returned by Refresh when no source is configured.
var errNoSources = fmt.Errorf("%w: no gold sources configured", domain.ErrUpstream)

// Refresh fetches every source concurrently and stores the quotes. A failing
// source is logged and skipped. It fails only when every source fails.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	if len(s.sources) == 0 {
		return 0, errNoSources
	}

	results := make([][]domain.GoldPrice, len(s.sources))
	errs := make([]error, len(s.sources))

	var g errgroup.Group
	for i, src := range s.sources {
		g.Go(func() error {
			prices, err := src.Fetch(ctx)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", src.Name(), err)
				return errs[i]
			}
			results[i] = prices
			return nil
		})
	}
	// Wait returns the first failure; the rest are in errs.
	firstErr := g.Wait()

	var (
		fetched []domain.GoldPrice
		failed  int
	)
	for i, err := range errs {
		if err != nil {
			failed++
			s.log.WarnContext(ctx, "gold source failed",
				slog.String("source", s.sources[i].Name()),
				slog.String("error", err.Error()))
			continue
		}
		fetched = append(fetched, results[i]...)
	}

	if failed == len(s.sources) {
		return 0, fmt.Errorf("gold.Refresh: %w: all %d sources failed: %w", domain.ErrUpstream, failed, firstErr)
	}

	n, err := s.prices.InsertBatch(ctx, fetched)
	if err != nil {
		return 0, fmt.Errorf("gold.Refresh: %w", err)
	}

	s.log.InfoContext(ctx, "gold prices refreshed",
		slog.Int("quotes", n),
		slog.Int("failed_sources", failed))

	return n, nil
}

// Latest returns the newest quote per (source, type). Stale data triggers a
// refresh first; a failed refresh is only an error when nothing is stored.
func (s *Service) Latest(ctx context.Context, goldType string) ([]domain.GoldPrice, error) {
	goldType, err := normalizeFilter("type", goldType)
	if err != nil {
		return nil, err
	}

	refreshErr := s.refreshIfStale(ctx)

	prices, err := s.prices.Latest(ctx, goldType)
	if err != nil {
		return nil, fmt.Errorf("gold.Latest: %w", err)
	}
	if len(prices) == 0 && refreshErr != nil {
		return nil, fmt.Errorf("gold.Latest: %w", refreshErr)
	}
	return prices, nil
}

// HistoryInput narrows a history query.
type HistoryInput struct {
	Type   string
	Source string
	Days   int
}

// History returns quotes of the last Days days (1..365, default 30),
// oldest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.GoldPrice, error) {
	if input.Days == 0 {
		input.Days = DefaultHistoryDays
	}
	if input.Days < 1 || input.Days > MaxHistoryDays {
		return nil, domain.NewValidationError("days", "must be between 1 and 365")
	}

	goldType, err := normalizeFilter("type", input.Type)
	if err != nil {
		return nil, err
	}
	source, err := normalizeFilter("source", input.Source)
	if err != nil {
		return nil, err
	}

	prices, err := s.prices.History(ctx, domain.GoldHistoryFilter{
		Type:   goldType,
		Source: strings.ToLower(source),
		Since:  s.now().Add(-time.Duration(input.Days) * 24 * time.Hour),
	})
	if err != nil {
		return nil, fmt.Errorf("gold.History: %w", err)
	}
	return prices, nil
}

// Sources lists the configured sources with their last fetch time.
func (s *Service) Sources(ctx context.Context) ([]domain.GoldSource, error) {
	last, err := s.prices.LastFetched(ctx)
	if err != nil {
		return nil, fmt.Errorf("gold.Sources: %w", err)
	}

	out := make([]domain.GoldSource, 0, len(s.sources))
	for _, src := range s.sources {
		gs := domain.GoldSource{Name: src.Name(), Enabled: true}
		if at, ok := last[src.Name()]; ok {
			gs.LastFetched = &at
		}
		out = append(out, gs)
	}
	return out, nil
}

// Prune deletes quotes older than retention.
func (s *Service) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.prices.Prune(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("gold.Prune: %w", err)
	}
	s.log.InfoContext(ctx, "gold history pruned", slog.Int64("deleted", n))
	return n, nil
}

// refreshIfStale refreshes when no source has a quote newer than the refresh
// interval. Concurrent callers share one refresh.
func (s *Service) refreshIfStale(ctx context.Context) error {
	last, err := s.prices.LastFetched(ctx)
	if err != nil {
		return fmt.Errorf("gold last fetched: %w", err)
	}

	cutoff := s.now().Add(-s.refreshInterval)
	for _, at := range last {
		if at.After(cutoff) {
			return nil
		}
	}

	_, err, _ = s.refreshGroup.Do("refresh", func() (any, error) {
		return s.Refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		s.log.WarnContext(ctx, "gold refresh failed", slog.String("error", err.Error()))
	}
	return err
}

func normalizeFilter(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if utf8.RuneCountInString(v) > maxFilterLength {
		return "", domain.NewValidationError(field, "must be at most 100 characters")
	}
	return v, nil
}
