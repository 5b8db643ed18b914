package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"powercli/internal/config"
	"powercli/internal/infrastructure"
	"powercli/internal/pipeline"
)

func main() {
	force := flag.Bool("force", false, "re-download even when the data directory exists")
	url := flag.String("url", "", "archive URL (defaults to the configured dataset URL)")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	cfg.Logging.FilePath = paths.GetLogPath("fetcher.log")
	if *url != "" {
		cfg.Dataset.URL = *url
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	if *force && paths.DatasetPresent() {
		logger.InfoContext(ctx, "removing existing data directory",
			slog.String("data_dir", paths.DataDir))
		if err := os.RemoveAll(paths.DataDir); err != nil {
			logger.ErrorContext(ctx, "failed to remove data directory", slog.String("error", err.Error()))
			infrastructure.CloseLogFile()
			os.Exit(1)
		}
	}

	logger.InfoContext(ctx, "starting dataset acquisition",
		slog.String("url", cfg.Dataset.URL),
		slog.String("data_dir", paths.DataDir))

	if err := pipeline.New(cfg, paths, logger).Acquire(ctx); err != nil {
		logger.ErrorContext(ctx, "acquisition failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "acquisition complete",
		slog.String("dataset_file", paths.DatasetFile))
}
