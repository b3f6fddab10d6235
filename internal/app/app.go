package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/adapter/redis"
	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/transport/middleware"
	"github.com/kadong/kadong-backend/internal/transport/rest"
	"github.com/kadong/kadong-backend/migrations"
)

// memoryStoreSweep is how often the in-process rate limit store drops
// expired windows.
const memoryStoreSweep = time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), builds the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("log_level", cfg.Log.Level),
	)
	if cfg.DevFallbackEnabled() {
		logger.Warn("anonymous requests fall back to the dev user",
			slog.String("dev_user_id", cfg.Auth.DevUserID))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		n, err := postgres.MigrateUp(ctx, pool, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, cleanup, err := buildHandler(cfg, logger, pool, rdb, reg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// buildHandler wires repositories, providers, services and handlers into
// the router. The returned cleanup stops background workers.
func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	rdb *goredis.Client,
	reg *prometheus.Registry,
) (http.Handler, func(), error) {
	devUserID, err := parseDevUser(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := newServices(cfg, logger, pool, rdb)
	handlers := newHandlers(cfg, logger, pool, rdb, svc)

	cleanup := func() {}
	var store middleware.Store
	if rdb != nil {
		store = redis.NewCounterStore(rdb)
	} else {
		mem := middleware.NewMemoryStore(memoryStoreSweep)
		store = mem
		cleanup = mem.Stop
	}

	metrics := middleware.NewMetrics(reg)

	router := rest.NewRouter(rest.RouterConfig{
		Logger:       logger,
		CORS:         cfg.CORS,
		TrustProxy:   cfg.RateLimit.TrustProxy,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Identity: middleware.Identity(svc.auth, middleware.IdentityConfig{
			DevFallback: cfg.DevFallbackEnabled(),
			DevUserID:   devUserID,
		}),
		Limiter:  middleware.NewRateLimiter(store, cfg.RateLimit, logger, metrics),
		Metrics:  metrics,
		Gatherer: reg,
	}, handlers)

	return router, cleanup, nil
}

func parseDevUser(cfg *config.Config) (uuid.UUID, error) {
	if !cfg.DevFallbackEnabled() {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(cfg.Auth.DevUserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.dev_user_id: %w", err)
	}
	return id, nil
}
