package model

import "time"

// RunSummary captures metrics from a single aggregation run.
type RunSummary struct {
	RunID              string
	SourcesFound       int
	SourcesSkipped     int
	SourcesMatched     int // sources contributing at least one row
	FacilitiesQueried  int
	FacilitiesResolved int
	UnmatchedQueries   []string
	CanonicalNames     int
	RowsScanned        int64
	RowsMatched        int64
	RowsAggregated     int64 // after full-row dedup
	DurationCollect    time.Duration
	DurationResolve    time.Duration
	DurationAggregate  time.Duration
	DurationTotal      time.Duration
}
