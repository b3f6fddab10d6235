package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/transport/respond"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// Store counts hits per key in fixed windows.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}

// RateLimiter enforces the configured per-class limits keyed by client IP.
type RateLimiter struct {
	store    Store
	limits   map[string]config.Limit
	disabled bool
	log      *slog.Logger
	metrics  *Metrics
}

// NewRateLimiter creates a limiter. metrics may be nil.
func NewRateLimiter(store Store, cfg config.RateLimitConfig, logger *slog.Logger, metrics *Metrics) *RateLimiter {
	return &RateLimiter{
		store:    store,
		limits:   cfg.Limits,
		disabled: cfg.Disabled,
		log:      logger.With("middleware", "ratelimit"),
		metrics:  metrics,
	}
}

// Limit returns middleware enforcing the limit of class. Unknown classes and
// a disabled limiter pass every request through.
func (rl *RateLimiter) Limit(class string) Middleware {
	limit, ok := rl.limits[class]
	if rl.disabled || !ok {
		return func(next http.Handler) http.Handler { return next }
	}

	retryAfter := humanizeWindow(limit.Window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = remoteHost(r)
			}
			key := "rl:" + class + ":" + ip

			count, resetIn, err := rl.store.Hit(r.Context(), key, limit.Window)
			if err != nil {
				rl.log.WarnContext(r.Context(), "rate limit store failed, allowing request",
					slog.String("key", key),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit.Max) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit.Max))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit.Max) {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
				if rl.metrics != nil {
					rl.metrics.rateLimited.WithLabelValues(class).Inc()
				}
				rl.log.InfoContext(r.Context(), "rate limit exceeded",
					slog.String("class", class),
					slog.String("ip", ip))
				respond.Fail(w, http.StatusTooManyRequests, respond.ErrorBody{
					Code:       respond.CodeTooManyRequests,
					Message:    "Too many requests, please try again later.",
					RetryAfter: retryAfter,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// humanizeWindow renders a window as "15 minutes", "1 hour", "24 hours".
func humanizeWindow(d time.Duration) string {
	n, unit := int64(d/time.Second), "second"
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		n, unit = int64(d/time.Hour), "hour"
	case d >= time.Minute && d%time.Minute == 0:
		n, unit = int64(d/time.Minute), "minute"
	}
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", n, unit)
}

// MemoryStore is a process-local Store for single-instance deployments
// without Redis. Call Stop on shutdown.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*fixedWindow
	stop    chan struct{}
	now     func() time.Time
}

type fixedWindow struct {
	count   int64
	resetAt time.Time
}

// NewMemoryStore creates a MemoryStore that drops expired windows every
// cleanupInterval.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		windows: make(map[string]*fixedWindow),
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go s.cleanup(cleanupInterval)
	return s
}

// Stop terminates the background cleanup goroutine.
func (s *MemoryStore) Stop() {
	close(s.stop)
}

// Hit implements Store.
func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &fixedWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

func (s *MemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := s.now()
			for k, w := range s.windows {
				if !now.Before(w.resetAt) {
					delete(s.windows, k)
				}
			}
			s.mu.Unlock()
		}
	}
}
