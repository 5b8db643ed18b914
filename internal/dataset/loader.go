package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"powercli/pkg/contracts/domain"
)

// fieldCount is the number of columns in the source file.
const fieldCount = 9

// LoadStats reports what the loader saw while streaming the source file.
type LoadStats struct {
	Scanned   int // data rows read
	Retained  int // rows matching a target date
	Malformed int // rows skipped for bad shape
}

// Loader streams the semicolon-delimited source file and keeps only rows for
// the configured target dates.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader instance.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadFiltered reads path and returns, in file order, the raw records whose
// Date field exactly matches one of dates. The file is processed row by row;
// only the retained subset is materialized.
func (l *Loader) LoadFiltered(path string, dates []string) ([]domain.RawRecord, LoadStats, error) {
	var stats LoadStats

	f, err := os.Open(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	// Rows with stray separators are counted and skipped, not fatal.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(header) < fieldCount {
		return nil, stats, fmt.Errorf("unexpected header with %d columns", len(header))
	}

	wanted := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		wanted[d] = struct{}{}
	}

	var records []domain.RawRecord
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.Malformed++
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, stats, fmt.Errorf("failed to read dataset row: %w", err)
		}

		stats.Scanned++
		if len(row) != fieldCount {
			stats.Malformed++
			continue
		}

		if _, ok := wanted[row[0]]; !ok {
			continue
		}

		records = append(records, domain.RawRecord{
			Date:                row[0],
			Time:                row[1],
			GlobalActivePower:   row[2],
			GlobalReactivePower: row[3],
			Voltage:             row[4],
			GlobalIntensity:     row[5],
			SubMetering1:        row[6],
			SubMetering2:        row[7],
			SubMetering3:        row[8],
		})
		stats.Retained++
	}

	l.logger.Info("dataset loaded",
		slog.String("path", path),
		slog.Int("scanned", stats.Scanned),
		slog.Int("retained", stats.Retained),
		slog.Int("malformed", stats.Malformed))

	return records, stats, nil
}
