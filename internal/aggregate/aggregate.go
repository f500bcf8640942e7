package aggregate

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gyeh/caretrend/internal/model"
	"github.com/gyeh/caretrend/internal/source"
)

// Stats holds counters from the aggregation scan.
type Stats struct {
	SourcesSkipped int
	SourcesMatched int
	RowsScanned    int64
	RowsMatched    int64
	RowsAggregated int64
}

// Aggregate re-reads every source, keeps rows whose Facility Name is in
// resolved, concatenates them, and removes exact full-row duplicates while
// preserving first-occurrence order. The output header is the union of every
// contributing source's columns, in first-seen order; a column a source
// lacks is filled with "" in its rows.
//
// A source contributing zero rows is reported, not an error. Returns
// *NoFacilitiesResolvedError when resolved is empty, *NoDataFoundError when
// no source yields any matching row.
func Aggregate(ctx context.Context, log zerolog.Logger, sources []source.Source, resolved []string) (*model.Table, *Stats, error) {
	if len(resolved) == 0 {
		return nil, nil, &NoFacilitiesResolvedError{}
	}
	want := make(map[string]struct{}, len(resolved))
	for _, name := range resolved {
		want[name] = struct{}{}
	}

	stats := &Stats{}
	var header []string
	headerSeen := make(map[string]struct{})
	type pending struct {
		src *model.Table
		row []string
	}
	var matched []pending

	for _, src := range sources {
		t, err := readSource(ctx, src)
		if err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("source unreadable, skipping")
			stats.SourcesSkipped++
			continue
		}
		fi, _ := t.Column(model.ColFacilityName)

		hits := 0
		for _, row := range t.Rows {
			stats.RowsScanned++
			if fi >= len(row) {
				continue
			}
			if _, hit := want[row[fi]]; !hit {
				continue
			}
			hits++
			stats.RowsMatched++
			matched = append(matched, pending{src: t, row: row})
		}

		if hits == 0 {
			log.Info().Str("source", src.Name()).Msg("no matching rows in source")
			continue
		}
		stats.SourcesMatched++
		log.Info().Str("source", src.Name()).Int("rows", hits).Msg("rows matched")
		for _, name := range t.Header {
			if _, ok := headerSeen[name]; !ok {
				headerSeen[name] = struct{}{}
				header = append(header, name)
			}
		}
	}

	if len(matched) == 0 {
		return nil, nil, &NoDataFoundError{Facilities: resolved}
	}

	// Projection and dedup run after the scan so every row lands on the
	// full union header.
	agg := model.NewTable(header, nil)
	dedup := make(map[string]struct{})
	for _, p := range matched {
		row := projectRow(agg, p.src, p.row)
		key := dedupKey(row)
		if _, dup := dedup[key]; dup {
			continue
		}
		dedup[key] = struct{}{}
		agg.Rows = append(agg.Rows, row)
	}
	stats.RowsAggregated = int64(agg.Len())
	return agg, stats, nil
}

// projectRow re-orders a row from src's column layout into dst's.
func projectRow(dst, src *model.Table, row []string) []string {
	out := make([]string, len(dst.Header))
	for i, name := range dst.Header {
		if j, ok := src.Column(name); ok && j < len(row) {
			out[i] = row[j]
		}
	}
	return out
}

// dedupKey encodes a row unambiguously: each cell is length-prefixed, so no
// cell content can make two distinct rows collide.
func dedupKey(row []string) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteString(strconv.Itoa(len(cell)))
		b.WriteByte(':')
		b.WriteString(cell)
	}
	return b.String()
}
