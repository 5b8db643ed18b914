package validation

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// expectedHeader is the exact header row of the household power consumption
// source file.
var expectedHeader = []string{
	"Date", "Time",
	"Global_active_power", "Global_reactive_power",
	"Voltage", "Global_intensity",
	"Sub_metering_1", "Sub_metering_2", "Sub_metering_3",
}

// DatasetValidator checks the extracted source file before parsing begins.
// A failure here is an acquisition-class error: there is no data to proceed
// with, so the run aborts.
type DatasetValidator struct {
	logger *slog.Logger
}

// NewDatasetValidator creates a new dataset validator
func NewDatasetValidator(logger *slog.Logger) *DatasetValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetValidator{logger: logger}
}

// ValidateDatasetFile checks that the file exists, is readable, and carries
// the expected nine-column header.
func (v *DatasetValidator) ValidateDatasetFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("dataset file does not exist",
			slog.String("file", path))
		return fmt.Errorf("dataset file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat dataset file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		v.logger.Error("dataset file is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("dataset file %s is not readable: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return fmt.Errorf("dataset file %s is empty", path)
	}

	header := strings.Split(strings.TrimSpace(scanner.Text()), ";")
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("dataset header has %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, col := range expectedHeader {
		if header[i] != col {
			return fmt.Errorf("dataset header column %d is %q, want %q", i, header[i], col)
		}
	}

	v.logger.Info("dataset file validated",
		slog.String("file", path),
		slog.Int64("size_bytes", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the output directory exists or can be
// created, and is writable.
func (v *DatasetValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	return nil
}
