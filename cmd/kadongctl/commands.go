package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/adapter/postgres/session"
	"github.com/kadong/kadong-backend/internal/adapter/postgres/user"
	"github.com/kadong/kadong-backend/internal/app"
	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/migrations"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply or inspect schema migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withEnv(func(ctx context.Context, e *env) error {
					n, err := postgres.MigrateUp(ctx, e.pool, migrations.FS)
					if err != nil {
						return err
					}
					e.logger.Info("migrations applied", slog.Int("count", n))
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the latest migration",
				Action: withEnv(func(ctx context.Context, e *env) error {
					provider, err := postgres.NewMigrator(e.pool, migrations.FS)
					if err != nil {
						return err
					}
					res, err := provider.Down(ctx)
					if err != nil {
						return fmt.Errorf("goose down: %w", err)
					}
					e.logger.Info("migration rolled back",
						slog.Int64("version", res.Source.Version),
						slog.Duration("took", res.Duration))
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "print the state of every migration",
				Action: withEnv(func(ctx context.Context, e *env) error {
					provider, err := postgres.NewMigrator(e.pool, migrations.FS)
					if err != nil {
						return err
					}
					statuses, err := provider.Status(ctx)
					if err != nil {
						return fmt.Errorf("goose status: %w", err)
					}
					for _, st := range statuses {
						applied := "-"
						if !st.AppliedAt.IsZero() {
							applied = st.AppliedAt.Format(time.RFC3339)
						}
						fmt.Printf("%05d  %-8s  %s  %s\n", st.Source.Version, st.State, applied, st.Source.Path)
					}
					return nil
				}),
			},
		},
	}
}

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "manage user accounts",
		Subcommands: []*cli.Command{
			{
				Name:  "promote",
				Usage: "give a user the admin role",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "email of the user to promote", Required: true},
				},
				Action: func(c *cli.Context) error {
					email := c.String("email")
					return withEnv(func(ctx context.Context, e *env) error {
						u, err := user.New(e.pool).SetRoleByEmail(ctx, email, domain.UserRoleAdmin)
						if errors.Is(err, domain.ErrNotFound) {
							return fmt.Errorf("no user with email %q, or already admin", email)
						}
						if err != nil {
							return err
						}
						e.logger.Info("user promoted to admin",
							slog.String("user_id", u.ID.String()),
							slog.String("email", u.Email))
						return nil
					})(c)
				},
			},
		},
	}
}

func sessionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "sessions",
		Usage: "maintain refresh sessions",
		Subcommands: []*cli.Command{
			{
				Name:  "cleanup",
				Usage: "delete sessions that expired or were revoked before the retention window",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "retention", Value: 30 * 24 * time.Hour, Usage: "keep sessions that ended within this window"},
				},
				Action: func(c *cli.Context) error {
					retention := c.Duration("retention")
					return withEnv(func(ctx context.Context, e *env) error {
						cutoff := time.Now().Add(-retention)
						n, err := session.New(e.pool).DeleteStale(ctx, cutoff)
						if err != nil {
							return fmt.Errorf("cleanup sessions: %w", err)
						}
						e.logger.Info("session cleanup completed",
							slog.Int64("deleted", n),
							slog.Time("cutoff", cutoff))
						return nil
					})(c)
				},
			},
		},
	}
}

func goldCommand() *cli.Command {
	return &cli.Command{
		Name:  "gold",
		Usage: "maintain gold prices",
		Subcommands: []*cli.Command{
			{
				Name:  "refresh",
				Usage: "fetch quotes from every gold provider",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "prune", Usage: "also delete quotes older than this (0 keeps everything)"},
				},
				Action: func(c *cli.Context) error {
					prune := c.Duration("prune")
					return withEnv(func(ctx context.Context, e *env) error {
						svc := app.NewGoldService(e.cfg, e.logger, e.pool)
						n, err := svc.Refresh(ctx)
						if err != nil {
							return err
						}
						e.logger.Info("gold refreshed", slog.Int("stored", n))

						if prune > 0 {
							if _, err := svc.Prune(ctx, prune); err != nil {
								return err
							}
						}
						return nil
					})(c)
				},
			},
		},
	}
}

func currencyCommand() *cli.Command {
	return &cli.Command{
		Name:  "currency",
		Usage: "maintain exchange rates",
		Subcommands: []*cli.Command{
			{
				Name:  "refresh",
				Usage: "fetch rates for the given base currencies",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "base", Value: cli.NewStringSlice("USD"), Usage: "base currency, repeatable"},
				},
				Action: func(c *cli.Context) error {
					var bases []domain.Currency
					for _, raw := range c.StringSlice("base") {
						base, ok := domain.ParseCurrency(raw)
						if !ok {
							return fmt.Errorf("unsupported currency %q", raw)
						}
						bases = append(bases, base)
					}

					return withEnv(func(ctx context.Context, e *env) error {
						svc := app.NewCurrencyService(e.cfg, e.logger, e.pool)
						for _, base := range bases {
							n, err := svc.Refresh(ctx, base)
							if err != nil {
								return fmt.Errorf("refresh %s: %w", base, err)
							}
							e.logger.Info("currency refreshed",
								slog.String("base", base.String()),
								slog.Int("stored", n))
						}
						return nil
					})(c)
				},
			},
		},
	}
}
