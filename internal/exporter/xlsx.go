package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"powercli/internal/dataprocessing"
)

// summarySheet is the worksheet name of the daily summary workbook.
const summarySheet = "Daily Summary"

// XLSXWriter writes report artifacts as Excel workbooks.
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a new Excel writer instance
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{logger: logger}
}

// WriteSummaryXLSX writes the daily summaries to an .xlsx workbook at
// filePath, creating parent directories as needed.
func (w *XLSXWriter) WriteSummaryXLSX(summaries []dataprocessing.DailySummary, filePath string) error {
	w.logger.Info("writing summary workbook",
		slog.String("path", filePath),
		slog.Int("rows", len(summaries)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), summarySheet)

	for col, header := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for i, s := range summaries {
		row := []interface{}{
			s.Date, s.Readings, s.Missing,
			s.MeanActivePower, s.MinActivePower, s.MaxActivePower,
			s.MeanVoltage,
			s.SubMetering1, s.SubMetering2, s.SubMetering3,
		}
		for col, val := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build cell for row %d: %w", i, err)
			}
			if err := f.SetCellValue(summarySheet, cell, val); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
