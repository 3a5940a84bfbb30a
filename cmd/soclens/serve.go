package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/soclens/soclens/internal/cache"
	"github.com/soclens/soclens/internal/config"
	"github.com/soclens/soclens/internal/datasource"
	"github.com/soclens/soclens/internal/datasource/siemapi"
	"github.com/soclens/soclens/internal/datasource/sonicwall"
	"github.com/soclens/soclens/internal/datasource/vaultcreds"
	httpapp "github.com/soclens/soclens/internal/http"
	"github.com/soclens/soclens/internal/http/handlers"
	"github.com/soclens/soclens/internal/metrics"
	"github.com/soclens/soclens/internal/refresh"
	"github.com/soclens/soclens/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and background snapshot refresh loop.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
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

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	st := store.New(pool)

	sessions := scs.New()
	sessions.Store = pgxstore.New(pool)
	sessions.Lifetime = 12 * time.Hour
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = cfg.AuthCookieSecure

	var snapCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		snapCache = cache.New(rdb, cfg.SnapshotTTL)
	}

	providers, err := buildProviders(cfg)
	if err != nil {
		return err
	}

	var refresher handlers.RefreshRunner
	if len(providers) > 0 {
		runner := refresh.NewSnapshotRunner(providers, st, snapCache)
		scheduler := refresh.Scheduler{Runner: runner, Interval: cfg.RefreshInterval}
		go scheduler.Run(ctx)
		refresher = runner
	} else {
		slog.Warn("no datasources configured; dashboards serve stored snapshots only")
	}

	_, metricsErrCh := metrics.StartServer(ctx, cfg.MetricsAddr)

	srv, err := httpapp.NewEchoServer(cfg, st, sessions, snapCache, refresher)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr)
		errCh <- srv.StartServer(httpServer)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-metricsErrCh:
		return err
	}
}

func buildProviders(cfg config.Config) ([]datasource.Provider, error) {
	var providers []datasource.Provider

	if cfg.SIEMAPIURL != "" {
		client, err := siemapi.New(cfg.SIEMAPIURL, cfg.SIEMAPIToken, cfg.RequestTimeout)
		if err != nil {
			return nil, err
		}
		providers = append(providers, client)
	}

	if cfg.SonicWallAPIURL != "" {
		client, err := sonicwall.New(cfg.SonicWallAPIURL, cfg.SonicWallUser, cfg.SonicWallPassword, cfg.RequestTimeout)
		if err != nil {
			return nil, err
		}
		providers = append(providers, client)
	}

	return providers, nil
}
