package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rate-limit class names.
const (
	LimitLogin          = "login"
	LimitRegister       = "register"
	LimitForgotPassword = "forgot_password"
	LimitAPI            = "api"
	LimitHearts         = "hearts"
	LimitComments       = "comments"
	LimitWeddingSave    = "wedding_save"
)

// Limit is a parsed fixed-window rate limit.
type Limit struct {
	Max    int
	Window time.Duration
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.App.Env) {
	case "development", "production", "test":
	default:
		return fmt.Errorf("app.env must be development, production or test (got %q)", c.App.Env)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}
	if c.Auth.DevFallback != "" {
		if _, err := strconv.ParseBool(c.Auth.DevFallback); err != nil {
			return fmt.Errorf("auth.dev_fallback must be a boolean (got %q)", c.Auth.DevFallback)
		}
	}
	if c.DevFallbackEnabled() {
		if _, err := uuid.Parse(c.Auth.DevUserID); err != nil {
			return fmt.Errorf("auth.dev_user_id must be a UUID: %w", err)
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}

	if c.Providers.Weather.CacheTTL < 0 {
		return fmt.Errorf("providers.weather.cache_ttl must be >= 0")
	}
	if c.Providers.Metadata.MaxBytes <= 0 {
		return fmt.Errorf("providers.metadata.max_bytes must be > 0")
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	raw := map[string]string{
		LimitLogin:          r.Login,
		LimitRegister:       r.Register,
		LimitForgotPassword: r.ForgotPassword,
		LimitAPI:            r.API,
		LimitHearts:         r.Hearts,
		LimitComments:       r.Comments,
		LimitWeddingSave:    r.WeddingSave,
	}

	limits := make(map[string]Limit, len(raw))
	for class, def := range raw {
		l, err := ParseLimit(def)
		if err != nil {
			return fmt.Errorf("%s: %w", class, err)
		}
		limits[class] = l
	}
	r.Limits = limits
	return nil
}

// ParseLimit parses "<max>/<window>", e.g. "5/15m" or "100/24h".
func ParseLimit(def string) (Limit, error) {
	maxStr, windowStr, ok := strings.Cut(strings.TrimSpace(def), "/")
	if !ok {
		return Limit{}, fmt.Errorf("invalid limit %q: want <max>/<window>", def)
	}
	n, err := strconv.Atoi(strings.TrimSpace(maxStr))
	if err != nil || n <= 0 {
		return Limit{}, fmt.Errorf("invalid limit %q: max must be a positive integer", def)
	}
	d, err := time.ParseDuration(strings.TrimSpace(windowStr))
	if err != nil || d <= 0 {
		return Limit{}, fmt.Errorf("invalid limit %q: bad window", def)
	}
	return Limit{Max: n, Window: d}, nil
}
