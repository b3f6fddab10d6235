// Package redis holds the Redis-backed adapters: the rate limit counter
// store and the JSON response cache.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kadong/kadong-backend/internal/config"
)

// NewClient connects to Redis and pings it. It returns nil, nil when Redis is
// not configured so callers can fall back to in-process implementations.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Pinger adapts a client to the health check's Ping(ctx) error shape.
type Pinger struct {
	client goredis.Cmdable
}

// NewPinger wraps client.
func NewPinger(client goredis.Cmdable) *Pinger {
	return &Pinger{client: client}
}

// Ping round-trips a PING command.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
