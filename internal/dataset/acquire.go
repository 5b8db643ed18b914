package dataset

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"powercli/internal/config"
)

// Acquirer performs the one-time download and extraction of the source
// archive into the data directory.
type Acquirer struct {
	paths   *config.Paths
	fetcher Fetcher
	logger  *slog.Logger
}

// NewAcquirer creates an acquirer using the given download transport.
func NewAcquirer(paths *config.Paths, fetcher Fetcher, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Acquirer{
		paths:   paths,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Ensure makes the extracted dataset available. If the data directory already
// exists the call is a no-op: no network access, no filesystem writes. A
// download or extraction failure removes the partially populated directory so
// the next run starts clean, and returns the error.
func (a *Acquirer) Ensure(ctx context.Context, url string) error {
	if a.paths.DatasetPresent() {
		a.logger.InfoContext(ctx, "data directory present, skipping acquisition",
			slog.String("data_dir", a.paths.DataDir))
		return nil
	}

	a.logger.InfoContext(ctx, "acquiring dataset",
		slog.String("url", url),
		slog.String("data_dir", a.paths.DataDir))

	if err := os.MkdirAll(a.paths.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := a.fetcher.Fetch(ctx, url, a.paths.DatasetZip); err != nil {
		os.RemoveAll(a.paths.DataDir)
		return fmt.Errorf("failed to download dataset: %w", err)
	}

	if err := extractZip(a.paths.DatasetZip, a.paths.DataDir); err != nil {
		os.RemoveAll(a.paths.DataDir)
		return fmt.Errorf("failed to extract dataset: %w", err)
	}

	a.logger.InfoContext(ctx, "dataset acquired",
		slog.String("dataset_file", a.paths.DatasetFile))
	return nil
}

// extractZip extracts a zip file into the destination directory.
func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		path := filepath.Join(dest, f.Name)
		// Keep entries inside dest.
		if !strings.HasPrefix(path, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal archive path: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, f.FileInfo().Mode()); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}

		outFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.FileInfo().Mode())
		if err != nil {
			rc.Close()
			return err
		}

		_, err = io.Copy(outFile, rc)
		outFile.Close()
		rc.Close()

		if err != nil {
			return err
		}
	}

	return nil
}
