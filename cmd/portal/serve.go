package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mutualfundportal/portal/internal/auth"
	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/logger"
	"github.com/mutualfundportal/portal/internal/migrations"
	"github.com/mutualfundportal/portal/internal/repository"
	"github.com/mutualfundportal/portal/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configPath     string
		migrate        bool
		migrationsPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators and account API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(os.Stderr, false)

			cfg, err := config.LoadServerConfig(configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := openStore(ctx, cfg, migrate, migrationsPath)
			if err != nil {
				return err
			}
			defer store.Close()

			cache := openCache(ctx, cfg)

			authSvc := auth.NewService(store, cfg.JWTSecret, cfg.TokenTTL)
			if cfg.AdminPassword != "" {
				if _, err := authSvc.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
					logger.Error("Failed seeding admin user", "error", err)
				}
			} else {
				logger.Warn("No admin password configured; admin user not seeded", "env", config.EnvAdminPassword)
			}

			engine := newEngine()
			srv, err := server.New(cfg, server.Deps{
				Store:  store,
				Cache:  cache,
				Auth:   authSvc,
				Engine: engine,
			})
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "server configuration file (YAML)")
	f.BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	f.StringVar(&migrationsPath, "migrations", migrations.DefaultPath, "migrations directory")
	return cmd
}

func openStore(ctx context.Context, cfg config.ServerConfig, migrate bool, path string) (repository.Store, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("No database configured; accounts are kept in memory", "env", config.EnvDatabaseURL)
		return repository.NewMemoryStore(), nil
	}
	if migrate {
		runner, err := migrations.New(path, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		st, err := runner.Up()
		runner.Close()
		if err != nil {
			return nil, err
		}
		logger.Info("Migrations applied", "version", st.Version, "changed", st.Changed)
	}
	return repository.OpenPostgres(ctx, cfg.DatabaseURL)
}

func openCache(ctx context.Context, cfg config.ServerConfig) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}
	rc := repository.NewRedisCache(cfg.RedisAddr)
	if err := rc.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable; falling back to in-memory cache", "addr", cfg.RedisAddr, "error", err)
		return repository.NewMemoryCache()
	}
	return rc
}
