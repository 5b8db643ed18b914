package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"powercli/internal/config"
	"powercli/internal/dataprocessing"
	"powercli/internal/exporter"
	"powercli/internal/infrastructure"
	"powercli/internal/pipeline"
)

func main() {
	csvOut := flag.String("csv", "", "summary CSV path (defaults to data/reports/summary.csv)")
	xlsxOut := flag.String("xlsx", "", "summary workbook path (defaults to data/reports/summary.xlsx)")
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
	cfg.Logging.FilePath = paths.GetLogPath("summary.log")

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *csvOut == "" {
		*csvOut = paths.SummaryCSV
	}
	if *xlsxOut == "" {
		*xlsxOut = paths.SummaryXLSX
	}

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	logger.InfoContext(ctx, "starting summary export",
		slog.String("csv", *csvOut),
		slog.String("xlsx", *xlsxOut))

	ds, err := pipeline.New(cfg, paths, logger).Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	summaries := dataprocessing.NewSummarizer(logger).Summarize(ds)

	if err := exporter.NewCSVWriter(logger).WriteSummaryCSV(summaries, *csvOut); err != nil {
		logger.ErrorContext(ctx, "CSV export failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
	if err := exporter.NewXLSXWriter(logger).WriteSummaryXLSX(summaries, *xlsxOut); err != nil {
		logger.ErrorContext(ctx, "workbook export failed", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "summary export complete",
		slog.Int("days", len(summaries)))
}
