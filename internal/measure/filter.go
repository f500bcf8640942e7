// Package measure shapes the aggregated table into per-measure views:
// row selection by Measure ID, score coercion, and End Date parsing.
// All operations are pure and order-preserving.
package measure

import (
	"strconv"
	"strings"
	"time"

	"github.com/gyeh/caretrend/internal/model"
)

// NotAvailable is the sentinel CMS uses for suppressed or missing scores.
const NotAvailable = "Not Available"

// Filter selects rows whose Measure ID is one of ids. A table without a
// Measure ID column yields an empty result.
func Filter(t *model.Table, ids ...string) *model.Table {
	out := t.Empty()
	mi, ok := t.Column(model.ColMeasureID)
	if !ok {
		return out
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for _, row := range t.Rows {
		if mi >= len(row) {
			continue
		}
		if _, hit := want[row[mi]]; hit {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// CoerceScores drops rows whose Score is "Not Available", missing, or not a
// number, and rows missing an End Date. Returns the surviving rows plus
// their parsed scores, aligned index-for-index.
func CoerceScores(t *model.Table) (*model.Table, []float64) {
	out := t.Empty()
	si, okScore := t.Column(model.ColScore)
	ei, okEnd := t.Column(model.ColEndDate)
	if !okScore || !okEnd {
		return out, nil
	}
	var scores []float64
	for _, row := range t.Rows {
		if si >= len(row) || ei >= len(row) {
			continue
		}
		raw := strings.TrimSpace(row[si])
		if raw == "" || raw == NotAvailable || strings.TrimSpace(row[ei]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		out.Rows = append(out.Rows, row)
		scores = append(scores, v)
	}
	return out, scores
}

// ParseEndDates drops rows whose End Date parses under no known format.
// Returns the surviving rows plus their parsed dates, aligned
// index-for-index.
func ParseEndDates(t *model.Table) (*model.Table, []time.Time) {
	out := t.Empty()
	ei, ok := t.Column(model.ColEndDate)
	if !ok {
		return out, nil
	}
	var dates []time.Time
	for _, row := range t.Rows {
		if ei >= len(row) {
			continue
		}
		d, parsed := ParseEndDate(row[ei])
		if !parsed {
			continue
		}
		out.Rows = append(out.Rows, row)
		dates = append(dates, d)
	}
	return out, dates
}

// View is one measure group's cleaned time series: the surviving rows with
// parsed scores and dates in parallel slices. A zero-length view means "no
// data for this measure", which is a report line, never an error.
type View struct {
	Group  model.MeasureGroup
	Table  *model.Table
	Scores []float64
	Dates  []time.Time
}

// NewView filters t to the group's measure IDs, coerces scores, and parses
// end dates, in that order.
func NewView(t *model.Table, g model.MeasureGroup) *View {
	ft := Filter(t, g.IDs...)
	st, _ := CoerceScores(ft)
	dt, dates := ParseEndDates(st)

	// Rows that survived date parsing already carry numeric scores; re-parse
	// from the surviving rows to stay aligned with them.
	scores := make([]float64, dt.Len())
	if si, ok := dt.Column(model.ColScore); ok {
		for i, row := range dt.Rows {
			if si < len(row) {
				scores[i], _ = strconv.ParseFloat(strings.TrimSpace(row[si]), 64)
			}
		}
	}
	return &View{Group: g, Table: dt, Scores: scores, Dates: dates}
}

// Len returns the number of points in the view.
func (v *View) Len() int { return v.Table.Len() }
