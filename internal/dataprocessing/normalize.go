package dataprocessing

import (
	"log/slog"
	"strconv"

	"powercli/pkg/contracts/domain"
)

// missingMarker is the literal token the source file uses for an absent
// measurement.
const missingMarker = "?"

// Normalize converts raw records into typed readings: "?" fields become nil,
// numeric strings are parsed into nullable floats, and the per-record
// timestamp is derived from the Date and Time columns. Per-field parse
// failures are recovered locally by nulling the field; the input order is
// preserved.
func Normalize(records []domain.RawRecord, logger *slog.Logger) domain.Dataset {
	if logger == nil {
		logger = slog.Default()
	}

	readings := make([]domain.Reading, 0, len(records))
	badTimestamps := 0

	for _, rec := range records {
		r := domain.Reading{
			Date:                normalizeString(rec.Date),
			Time:                normalizeString(rec.Time),
			GlobalActivePower:   parseNullFloat(rec.GlobalActivePower),
			GlobalReactivePower: parseNullFloat(rec.GlobalReactivePower),
			Voltage:             parseNullFloat(rec.Voltage),
			GlobalIntensity:     parseNullFloat(rec.GlobalIntensity),
			SubMetering1:        parseNullFloat(rec.SubMetering1),
			SubMetering2:        parseNullFloat(rec.SubMetering2),
			SubMetering3:        parseNullFloat(rec.SubMetering3),
		}
		r.Timestamp = deriveTimestamp(r.Date, r.Time)
		if !r.HasTimestamp() {
			badTimestamps++
		}
		readings = append(readings, r)
	}

	if badTimestamps > 0 {
		logger.Warn("readings with unparseable timestamps retained",
			slog.Int("count", badTimestamps))
	}

	return domain.Dataset{Readings: readings}
}

// normalizeString maps the missing marker to the empty string and leaves
// everything else untouched.
func normalizeString(s string) string {
	if s == missingMarker {
		return ""
	}
	return s
}

// parseNullFloat parses a numeric field, treating the missing marker, empty
// strings, and unparseable values as nil. Nil is never coerced to zero.
func parseNullFloat(s string) *float64 {
	if s == "" || s == missingMarker {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
