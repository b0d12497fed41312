package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/GachaLab_Go/internal/bootstrap"
	"github.com/osse101/GachaLab_Go/internal/config"
	"github.com/osse101/GachaLab_Go/internal/database"
	"github.com/osse101/GachaLab_Go/internal/server"
)

// @title Gacha Lab API
// @version 1.0
// @description Poker-themed gacha for LINE users
// @BasePath /
// @securityDefinitions.apikey AdminAuth
// @in header
// @name X-Admin-Auth
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		if cfg.IsProduction() {
			return err
		}
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, database.PoolConfig{
		URL:         cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxIdleTime,
		MaxLifetime: cfg.DBMaxLifetime,
	})
	if err != nil {
		return err
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(pool)
	svcs, err := bootstrap.InitializeServices(cfg, repos.Set(), nil, nil)
	if err != nil {
		pool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminToken:     cfg.AdminAuthToken,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		TimeZone:       cfg.TimeZone,
	}, server.Services{
		DB:      pool,
		Users:   svcs.Users,
		Points:  svcs.Points,
		Gacha:   svcs.Gacha,
		Catalog: svcs.Catalog,
		Stats:   svcs.Stats,
		Line:    svcs.Line,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			pool.Close()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DB:     pool,
	})
	return nil
}
