package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"powercli/internal/dataprocessing"
)

// summaryHeaders is the column order of the daily summary artifacts.
var summaryHeaders = []string{
	"Date", "Readings", "Missing",
	"MeanActivePower", "MinActivePower", "MaxActivePower",
	"MeanVoltage",
	"SubMetering1Total", "SubMetering2Total", "SubMetering3Total",
}

// CSVWriter writes report artifacts as CSV files.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteSummaryCSV writes the daily summaries to filePath, creating parent
// directories as needed.
func (w *CSVWriter) WriteSummaryCSV(summaries []dataprocessing.DailySummary, filePath string) error {
	w.logger.Info("writing summary CSV",
		slog.String("path", filePath),
		slog.Int("rows", len(summaries)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(summaryHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, s := range summaries {
		if err := writer.Write(summaryRecord(s)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// summaryRecord formats one summary row for CSV output.
func summaryRecord(s dataprocessing.DailySummary) []string {
	return []string{
		s.Date,
		strconv.Itoa(s.Readings),
		strconv.Itoa(s.Missing),
		formatFloat(s.MeanActivePower),
		formatFloat(s.MinActivePower),
		formatFloat(s.MaxActivePower),
		formatFloat(s.MeanVoltage),
		formatFloat(s.SubMetering1),
		formatFloat(s.SubMetering2),
		formatFloat(s.SubMetering3),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
