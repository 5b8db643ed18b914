package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
// Everything is resolved relative to the working directory: the pipeline is a
// batch job run in place, and its outputs (plot2.png, plot4.png) land next to
// where it was invoked.
type Paths struct {
	WorkDir    string
	DataDir    string
	ReportsDir string
	LogsDir    string

	// Dataset files inside DataDir
	DatasetZip  string
	DatasetFile string

	// Well-known output files
	SinglePanelPNG string
	GridPNG        string
	SummaryCSV     string
	SummaryXLSX    string
}

// GetPaths returns the application paths relative to the working directory.
func GetPaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return PathsIn(wd), nil
}

// PathsIn builds the path set rooted at the given directory. Tests use this to
// point the pipeline at a temp dir.
func PathsIn(root string) *Paths {
	dataDir := filepath.Join(root, "data")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		WorkDir:    root,
		DataDir:    dataDir,
		ReportsDir: reportsDir,
		LogsDir:    filepath.Join(root, "logs"),

		DatasetZip:  filepath.Join(dataDir, "household_power_consumption.zip"),
		DatasetFile: filepath.Join(dataDir, "household_power_consumption.txt"),

		SinglePanelPNG: filepath.Join(root, "plot2.png"),
		GridPNG:        filepath.Join(root, "plot4.png"),
		SummaryCSV:     filepath.Join(reportsDir, "summary.csv"),
		SummaryXLSX:    filepath.Join(reportsDir, "summary.xlsx"),
	}
}

// EnsureDirectories creates the directories the pipeline writes into.
// The data directory is NOT included: its absence is what triggers dataset
// acquisition, so creating it here would defeat the idempotence check.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatasetPresent reports whether the data directory already exists. Dataset
// acquisition is skipped entirely when it does.
func (p *Paths) DatasetPresent() bool {
	info, err := os.Stat(p.DataDir)
	return err == nil && info.IsDir()
}

// GetLogPath returns the path for a named log file inside LogsDir.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
