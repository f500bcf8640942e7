package aggregate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/caretrend/internal/match"
	"github.com/gyeh/caretrend/internal/model"
	"github.com/gyeh/caretrend/internal/source"
)

// Result is the output of a full aggregation run: the clean analytic table,
// the resolved facility list that scoped it, the per-query match outcomes,
// and the run summary. The table is built fresh each run and never mutated
// after Run returns it.
type Result struct {
	Summary  *model.RunSummary
	Table    *model.Table
	Resolved []string
	Matches  []match.Result
}

// Run executes the full pipeline: collect → resolve → aggregate. Source- and
// row-level failures are absorbed and logged; only total-failure conditions
// (no queries resolved, no data at all) come back as errors, wrapped in a
// *PipelineError naming the phase.
func Run(ctx context.Context, log zerolog.Logger, queries []string, sources []source.Source) (*Result, error) {
	totalStart := time.Now()
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	summary := &model.RunSummary{
		RunID:             runID.String(),
		SourcesFound:      len(sources),
		FacilitiesQueried: len(queries),
	}

	// Phase 1: collect the canonical facility name set
	log.Info().Int("sources", len(sources)).Msg("collecting facility names")
	start := time.Now()
	canonical, skipped := CollectFacilities(ctx, log, sources)
	summary.CanonicalNames = len(canonical)
	summary.DurationCollect = time.Since(start)
	log.Info().
		Int("facilities", len(canonical)).
		Int("sources_skipped", skipped).
		Dur("duration", summary.DurationCollect).
		Msg("facility names collected")

	// Phase 2: resolve queries against the canonical set
	start = time.Now()
	matches := match.Resolve(queries, canonical)
	for _, m := range matches {
		switch m.Kind {
		case match.Exact:
			log.Info().Str("query", m.Query).Msg("exact match")
		case match.Fuzzy:
			log.Info().Str("query", m.Query).Str("matched", m.Name).Int("score", m.Score).Msg("fuzzy match")
		default:
			log.Warn().Str("query", m.Query).Str("best_candidate", m.Name).Int("score", m.Score).Msg("no match")
		}
	}
	resolved, unmatched := match.Resolved(matches)
	summary.FacilitiesResolved = len(resolved)
	summary.UnmatchedQueries = unmatched
	summary.DurationResolve = time.Since(start)

	if len(resolved) == 0 {
		return nil, &PipelineError{Phase: "resolve", Err: &NoFacilitiesResolvedError{Queries: unmatched}}
	}

	// Phase 3: re-scan sources, filter, concatenate, dedup
	start = time.Now()
	table, stats, err := Aggregate(ctx, log, sources, resolved)
	if err != nil {
		return nil, &PipelineError{Phase: "aggregate", Err: err}
	}
	summary.SourcesSkipped = stats.SourcesSkipped
	summary.SourcesMatched = stats.SourcesMatched
	summary.RowsScanned = stats.RowsScanned
	summary.RowsMatched = stats.RowsMatched
	summary.RowsAggregated = stats.RowsAggregated
	summary.DurationAggregate = time.Since(start)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int("facilities", len(resolved)).
		Int64("rows_matched", summary.RowsMatched).
		Int64("rows_aggregated", summary.RowsAggregated).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("aggregation pipeline complete")

	return &Result{
		Summary:  summary,
		Table:    table,
		Resolved: resolved,
		Matches:  matches,
	}, nil
}
