// Command kadongctl runs maintenance tasks against the KaDong database.
// It is meant for operators and cron jobs; the server never calls it.
//
// Usage:
//
//	kadongctl migrate up|down|status
//	kadongctl users promote --email=user@example.com
//	kadongctl sessions cleanup [--retention=720h]
//	kadongctl gold refresh [--prune=2160h]
//	kadongctl currency refresh [--base=USD --base=VND]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/app"
	"github.com/kadong/kadong-backend/internal/config"
)

const commandTimeout = 5 * time.Minute

func main() {
	cliApp := &cli.App{
		Name:    "kadongctl",
		Usage:   "KaDong maintenance commands",
		Version: app.BuildVersion(),
		Commands: []*cli.Command{
			migrateCommand(),
			usersCommand(),
			sessionsCommand(),
			goldCommand(),
			currencyCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "kadongctl: %v\n", err)
		os.Exit(1)
	}
}

// env is what every command needs: configuration, a logger and a pool.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

// withEnv loads configuration, connects to PostgreSQL and runs fn with a
// bounded context.
func withEnv(fn func(ctx context.Context, e *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger := app.NewLogger(cfg.Log)

		ctx, cancel := context.WithTimeout(c.Context, commandTimeout)
		defer cancel()

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			return err
		}
		defer pool.Close()

		return fn(ctx, &env{cfg: cfg, logger: logger, pool: pool})
	}
}
