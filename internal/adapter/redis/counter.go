package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CounterStore implements fixed-window counters. The window starts at the
// first hit of a key and the key expires when it ends.
type CounterStore struct {
	client goredis.Cmdable
}

// NewCounterStore creates a counter store on client.
func NewCounterStore(client goredis.Cmdable) *CounterStore {
	return &CounterStore{client: client}
}

// Hit increments key and returns the count within the current window and the
// time until the window resets.
func (s *CounterStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		incr *goredis.IntCmd
		ttl  *goredis.DurationCmd
	)
	_, err := s.client.Pipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		ttl = p.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("rate counter %s: %w", key, err)
	}

	count := incr.Val()
	resetIn := ttl.Val()

	// First hit, or a key that lost its expiry: start the window now.
	if count == 1 || resetIn < 0 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return count, window, fmt.Errorf("rate counter expire %s: %w", key, err)
		}
		resetIn = window
	}
	return count, resetIn, nil
}
