package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliveryops/api"
	"deliveryops/cmd"
	http_adapter "deliveryops/internal/adapters/in/http"
	"deliveryops/internal/adapters/out/postgres"
	"deliveryops/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	redisRetryDelay = time.Second
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envDir string

	root := &cobra.Command{
		Use:          "deliveryops",
		Short:        "Delivery operations service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directory holding the optional .env file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			return runWithConfig(c.Context(), envDir, serve)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			return runWithConfig(c.Context(), envDir, migrate)
		},
	})

	return root
}

func runWithConfig(ctx context.Context, envDir string, run func(context.Context, cmd.Config, *zap.Logger) error) error {
	cfg, err := cmd.LoadConfig(envDir)
	if err != nil {
		return err
	}

	l, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	return run(ctx, cfg, l)
}

func serve(ctx context.Context, cfg cmd.Config, l *zap.Logger) error {
	if cfg.Environment == "production" {
		log.SetLevel(log.WARN)
	}

	app, err := cmd.NewCompositionRoot(cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			l.Warn("Shutdown cleanup failed", zap.Error(err))
		}
	}()

	if db := app.DB(); db != nil {
		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	doc, err := api.Load()
	if err != nil {
		return err
	}
	e, err := http_adapter.NewRouter(app.CreateHTTPServer(), doc, l, app.HealthChecks()...)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("Starting HTTP server", zap.String("port", cfg.HTTPPort))
		if err := e.Start(":" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		l.Info("Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	if bus := app.RedisBus(); bus != nil {
		g.Go(func() error {
			bus.Listen(ctx, redisRetryDelay)
			return nil
		})
	}

	return g.Wait()
}

func migrate(ctx context.Context, cfg cmd.Config, l *zap.Logger) error {
	if !cfg.UsesPostgres() {
		return errors.New("DB_HOST is not set")
	}

	app, err := cmd.NewCompositionRoot(cfg, l)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := postgres.Migrate(ctx, app.DB()); err != nil {
		return err
	}
	l.Info("Database schema is up to date")
	return nil
}
