// Package dataprocessing turns raw string records from the source file into
// typed readings and aggregates.
//
// Normalization replaces the "?" missing-value marker with nil and parses
// numeric fields into nullable floats; a field that fails to parse becomes
// nil rather than failing the run. Timestamp derivation combines the Date and
// Time strings under the fixed day/month/year 24-hour layout; malformed pairs
// yield the zero time. The summarizer produces per-day aggregates for the
// report exporters.
package dataprocessing
