// Package dataset handles acquisition and loading of the household power
// consumption source data.
//
// Acquisition is idempotent: when the data directory already exists nothing
// is downloaded or written. Otherwise the fixed archive is fetched through a
// platform-selected Fetcher and extracted in place.
//
// Loading streams the semicolon-delimited source file and retains only rows
// whose Date field matches one of the configured target dates; the full file
// is never held in memory.
package dataset
