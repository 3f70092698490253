package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"keywordlens/internal/analysis"
	"keywordlens/internal/config"
	"keywordlens/internal/db"
	"keywordlens/internal/jobs"
	"keywordlens/internal/logger"
	"keywordlens/internal/metrics"
	"keywordlens/internal/research"
	"keywordlens/internal/server"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server exited")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.String("file", cfg.CatalogFile),
		zap.Strings("suffixes", catalog.Suffixes),
	)

	var database *db.DB
	if cfg.HasDatabase() {
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("migrations completed successfully")
	} else {
		log.Info("DATABASE_URL not set, keyword lookup telemetry disabled")
	}

	metrics.Init(database, log)
	defer metrics.Flush()

	analyzer := analysis.New(
		research.NewRandomGenerator(catalog.Metrics, nil),
		research.NewExpander(catalog.Suffixes),
	)

	srv := server.New(cfg, log)
	srv.RegisterRoutes(database, analyzer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		return srv.Shutdown()
	})

	if database != nil {
		pruner := jobs.NewLookupPruner(database, cfg.PruneInterval, cfg.LookupRetention, log)
		g.Go(func() error {
			pruner.Start(gctx)
			return nil
		})
	}

	return g.Wait()
}
