package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"powercli/internal/chart"
	"powercli/internal/config"
	"powercli/internal/infrastructure"
	"powercli/internal/pipeline"
)

func main() {
	out := flag.String("out", "", "output image path (defaults to plot4.png in the working directory)")
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
	cfg.Logging.FilePath = paths.GetLogPath("plot4.log")

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *out == "" {
		*out = paths.GridPNG
	}

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	logger.InfoContext(ctx, "starting four-panel chart job",
		slog.String("output", *out),
		slog.Any("target_dates", cfg.Dataset.TargetDates))

	ds, err := pipeline.New(cfg, paths, logger).Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	renderer := chart.NewRenderer(cfg.Chart.WidthPx, cfg.Chart.HeightPx, logger)
	if err := renderer.RenderGrid(ds, *out); err != nil {
		logger.ErrorContext(ctx, "rendering failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "chart job complete",
		slog.String("output", *out),
		slog.Int("readings", len(ds.Readings)))
}
