// Package community persists completed footprint results to a shared,
// append-only record store and computes per-metric medians across all
// historical submissions for peer comparison.
package community

import (
	"context"
	"errors"
	"time"
)

// Column names of the shared record schema. The header check compares
// these as a set, so column order in an existing store is irrelevant.
const (
	ColTimestamp  = "timestamp"
	ColTotal      = "Total Emissions"
	ColDevices    = "Devices Emissions"
	ColActivities = "Digital Activities Emissions"
	ColAITools    = "AI Tools Emissions"
)

// Columns is the canonical column order used when writing a fresh header.
var Columns = []string{ColTimestamp, ColTotal, ColDevices, ColActivities, ColAITools}

// MetricColumns lists the numeric columns statistics are computed over.
var MetricColumns = []string{ColTotal, ColDevices, ColActivities, ColAITools}

// ErrNoData is returned by median queries against an empty store. Callers
// render a "no data available" comparison instead of failing.
var ErrNoData = errors.New("community: no data")

// Record is one persisted submission row. Numeric fields are kg CO2e per
// year. A NaN value marks a cell that could not be parsed as a number;
// such cells are excluded from that column's statistics rather than
// counted as zero.
type Record struct {
	Timestamp  time.Time
	Total      float64
	Devices    float64
	Activities float64
	AITools    float64
}

// Store is an append-only record store shared between respondents. Appends
// are independent, unordered write attempts; reads are snapshots that may
// race with concurrent appends. Implementations self-heal a missing or
// mismatched header schema on access without touching data rows.
type Store interface {
	// Append writes one record.
	Append(ctx context.Context, rec Record) error

	// Records returns every stored record.
	Records(ctx context.Context) ([]Record, error)
}
