package config

import (
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Providers ProvidersConfig `yaml:"providers"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"development"`
}

// IsProduction reports whether error details and identity fallbacks must be suppressed.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// RedisConfig holds the optional Redis connection. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"JWT_SECRET"               env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"JWT_ISSUER"               env-default:"kadong"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"   env-default:"720h"`
	PasswordResetTTL time.Duration `yaml:"password_reset_ttl" env:"AUTH_PASSWORD_RESET_TTL"  env-default:"1h"`
	BcryptCost       int           `yaml:"bcrypt_cost"        env:"AUTH_BCRYPT_COST"         env-default:"10"`
	DevFallback      string        `yaml:"dev_fallback"       env:"AUTH_DEV_FALLBACK"`
	DevUserID        string        `yaml:"dev_user_id"        env:"AUTH_DEV_USER_ID"         env-default:"00000000-0000-0000-0000-000000000001"`
}

// RateLimitConfig holds per-class fixed-window limits written as "<max>/<window>".
type RateLimitConfig struct {
	Disabled       bool   `yaml:"disabled"        env:"RATE_LIMIT_DISABLED"        env-default:"false"`
	TrustProxy     bool   `yaml:"trust_proxy"     env:"RATE_LIMIT_TRUST_PROXY"     env-default:"false"`
	Login          string `yaml:"login"           env:"RATE_LIMIT_LOGIN"           env-default:"5/15m"`
	Register       string `yaml:"register"        env:"RATE_LIMIT_REGISTER"        env-default:"3/15m"`
	ForgotPassword string `yaml:"forgot_password" env:"RATE_LIMIT_FORGOT_PASSWORD" env-default:"3/1h"`
	API            string `yaml:"api"             env:"RATE_LIMIT_API"             env-default:"100/15m"`
	Hearts         string `yaml:"hearts"          env:"RATE_LIMIT_HEARTS"          env-default:"100/24h"`
	Comments       string `yaml:"comments"        env:"RATE_LIMIT_COMMENTS"        env-default:"50/1h"`
	WeddingSave    string `yaml:"wedding_save"    env:"RATE_LIMIT_WEDDING_SAVE"    env-default:"10/1h"`

	// Parsed from the raw strings during validation.
	Limits map[string]Limit `yaml:"-" env:"-"`
}

// ProvidersConfig groups outbound HTTP integrations.
type ProvidersConfig struct {
	Gold     GoldProviderConfig     `yaml:"gold"`
	Weather  WeatherProviderConfig  `yaml:"weather"`
	Currency CurrencyProviderConfig `yaml:"currency"`
	Metadata MetadataProviderConfig `yaml:"metadata"`
}

// GoldProviderConfig holds gold price sources.
type GoldProviderConfig struct {
	Sources         string        `yaml:"sources"          env:"GOLD_SOURCES"          env-default:"sjc,doji,goldapi"`
	SJCURL          string        `yaml:"sjc_url"          env:"GOLD_SJC_URL"          env-default:"https://sjc.com.vn/GoldPrice/Services/PriceService.ashx"`
	DOJIURL         string        `yaml:"doji_url"         env:"GOLD_DOJI_URL"         env-default:"https://giavang.doji.vn/api/giavang/"`
	GoldAPIURL      string        `yaml:"goldapi_url"      env:"GOLD_API_URL"          env-default:"https://www.goldapi.io/api/XAU/USD"`
	GoldAPIKey      string        `yaml:"goldapi_key"      env:"GOLD_API_KEY"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"GOLD_REFRESH_INTERVAL" env-default:"15m"`
	Timeout         time.Duration `yaml:"timeout"          env:"GOLD_TIMEOUT"          env-default:"10s"`
}

// SourceList returns the enabled source names.
func (g GoldProviderConfig) SourceList() []string {
	return splitCSV(g.Sources)
}

// WeatherProviderConfig holds the OpenWeatherMap-compatible endpoint.
type WeatherProviderConfig struct {
	BaseURL  string        `yaml:"base_url"  env:"WEATHER_BASE_URL"  env-default:"https://api.openweathermap.org/data/2.5"`
	APIKey   string        `yaml:"api_key"   env:"WEATHER_API_KEY"`
	Units    string        `yaml:"units"     env:"WEATHER_UNITS"     env-default:"metric"`
	Lang     string        `yaml:"lang"      env:"WEATHER_LANG"      env-default:"vi"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"WEATHER_CACHE_TTL" env-default:"10m"`
	Timeout  time.Duration `yaml:"timeout"   env:"WEATHER_TIMEOUT"   env-default:"10s"`
}

// CurrencyProviderConfig holds the exchange-rate endpoint.
type CurrencyProviderConfig struct {
	BaseURL string        `yaml:"base_url" env:"CURRENCY_BASE_URL" env-default:"https://open.er-api.com/v6/latest"`
	APIKey  string        `yaml:"api_key"  env:"CURRENCY_API_KEY"`
	TTL     time.Duration `yaml:"ttl"      env:"CURRENCY_TTL"      env-default:"6h"`
	Timeout time.Duration `yaml:"timeout"  env:"CURRENCY_TIMEOUT"  env-default:"10s"`
}

// MetadataProviderConfig holds product page scraping settings.
type MetadataProviderConfig struct {
	Timeout   time.Duration `yaml:"timeout"    env:"METADATA_TIMEOUT"    env-default:"10s"`
	MaxBytes  int64         `yaml:"max_bytes"  env:"METADATA_MAX_BYTES"  env-default:"2097152"`
	UserAgent string        `yaml:"user_agent" env:"METADATA_USER_AGENT" env-default:"Mozilla/5.0 (compatible; KaDongBot/1.0)"`
	ShopeeURL string        `yaml:"shopee_url" env:"METADATA_SHOPEE_URL" env-default:"https://shopee.vn/api/v4/item/get"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DevFallbackEnabled reports whether anonymous requests fall back to a
// query/default identity. Unset means enabled outside production.
func (c *Config) DevFallbackEnabled() bool {
	if v, err := strconv.ParseBool(c.Auth.DevFallback); err == nil {
		return v
	}
	return !c.App.IsProduction()
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
