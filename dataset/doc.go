// Package dataset loads the record file written by the chart acquisition
// step: a JSON array of {"title", "genres", "country"} objects, one per
// podcast. Elements are decoded one at a time so a single malformed entry is
// reported and skipped instead of failing the whole file.
package dataset
