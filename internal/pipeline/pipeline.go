// Package pipeline sequences the batch stages shared by the commands:
// acquire, validate, load, normalize. Each stage takes the previous stage's
// output as an explicit value; there is no shared mutable state.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"powercli/internal/config"
	"powercli/internal/dataprocessing"
	"powercli/internal/dataset"
	"powercli/internal/validation"
	"powercli/pkg/contracts/domain"
)

// Pipeline wires the stages together for one run.
type Pipeline struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger

	fetcher dataset.Fetcher
}

// New creates a pipeline. The download transport comes from configuration,
// defaulting to the per-platform choice.
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:     cfg,
		paths:   paths,
		logger:  logger,
		fetcher: dataset.FetcherByName(cfg.Dataset.Fetcher, runtime.GOOS),
	}
}

// WithFetcher overrides the download transport. Tests use this to point
// acquisition at an httptest server.
func (p *Pipeline) WithFetcher(f dataset.Fetcher) *Pipeline {
	p.fetcher = f
	return p
}

// Acquire makes the extracted dataset available (no-op if already present).
func (p *Pipeline) Acquire(ctx context.Context) error {
	acquirer := dataset.NewAcquirer(p.paths, p.fetcher, p.logger)
	return acquirer.Ensure(ctx, p.cfg.Dataset.URL)
}

// Run executes acquire, validate, load, and normalize, returning the
// filtered, typed dataset for the target dates.
func (p *Pipeline) Run(ctx context.Context) (domain.Dataset, error) {
	if err := p.Acquire(ctx); err != nil {
		return domain.Dataset{}, fmt.Errorf("acquisition failed: %w", err)
	}

	validator := validation.NewDatasetValidator(p.logger)
	if err := validator.ValidateDatasetFile(p.paths.DatasetFile); err != nil {
		return domain.Dataset{}, fmt.Errorf("dataset validation failed: %w", err)
	}

	loader := dataset.NewLoader(p.logger)
	records, stats, err := loader.LoadFiltered(p.paths.DatasetFile, p.cfg.Dataset.TargetDates)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load failed: %w", err)
	}
	if stats.Retained == 0 {
		return domain.Dataset{}, fmt.Errorf("no rows matched target dates %v", p.cfg.Dataset.TargetDates)
	}

	ds := dataprocessing.Normalize(records, p.logger)

	p.logger.InfoContext(ctx, "pipeline complete",
		slog.Int("readings", len(ds.Readings)))
	return ds, nil
}
