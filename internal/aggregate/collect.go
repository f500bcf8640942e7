package aggregate

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/gyeh/caretrend/internal/csvread"
	"github.com/gyeh/caretrend/internal/model"
	"github.com/gyeh/caretrend/internal/source"
)

// readSource opens and parses one source, rejecting sources without a
// Facility Name column. All failure modes come back as *SourceReadError.
func readSource(ctx context.Context, src source.Source) (*model.Table, error) {
	r, err := src.Open(ctx)
	if err != nil {
		return nil, &csvread.SourceReadError{Source: src.Name(), Err: err}
	}
	defer r.Close()
	t, err := csvread.Read(src.Name(), r)
	if err != nil {
		return nil, err
	}
	if err := csvread.RequireColumns(src.Name(), t, model.ColFacilityName); err != nil {
		return nil, err
	}
	return t, nil
}

// CollectFacilities scans every source once and returns the distinct
// Facility Name values observed, sorted, plus the count of sources that
// contributed nothing (unreadable, or no Facility Name column). Per-source
// failures are logged and absorbed; they never fail the batch.
func CollectFacilities(ctx context.Context, log zerolog.Logger, sources []source.Source) ([]string, int) {
	seen := make(map[string]struct{})
	skipped := 0

	for _, src := range sources {
		t, err := readSource(ctx, src)
		if err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("source unreadable, skipping")
			skipped++
			continue
		}
		fi, _ := t.Column(model.ColFacilityName)
		for _, row := range t.Rows {
			if fi < len(row) && row[fi] != "" {
				seen[row[fi]] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, skipped
}
