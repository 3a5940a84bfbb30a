package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/soclens/soclens/internal/cache"
	"github.com/soclens/soclens/internal/config"
	"github.com/soclens/soclens/internal/datasource/vaultcreds"
	"github.com/soclens/soclens/internal/refresh"
	"github.com/soclens/soclens/internal/store"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch every configured datasource once and store the snapshots.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRefresh()
	},
}

func runRefresh() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err = vaultcreds.Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	providers, err := buildProviders(cfg)
	if err != nil {
		return err
	}
	if len(providers) == 0 {
		return errors.New("no datasources configured")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	var snapCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		snapCache = cache.New(rdb, cfg.SnapshotTTL)
	}

	runner := refresh.NewSnapshotRunner(providers, store.New(pool), snapCache)
	if err := runner.RunOnce(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return &exitError{code: 130, err: err}
		}
		return err
	}
	return nil
}
