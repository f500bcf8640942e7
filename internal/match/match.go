// Package match resolves free-text facility names against the canonical
// names observed in loaded data: exact match first, fuzzy fallback.
package match

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Threshold is the similarity score a fuzzy candidate must strictly exceed
// to be accepted, on the 0-100 ratio scale.
const Threshold = 70

// Kind classifies one resolution outcome.
type Kind int

const (
	NoMatch Kind = iota
	Exact
	Fuzzy
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Fuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Result is the outcome for one query. For Exact, Name echoes the query and
// Score is meaningless. For Fuzzy, Name is the accepted canonical name and
// Score its similarity. For NoMatch, Name and Score describe the best
// rejected candidate (empty and 0 when the canonical set is empty) so
// callers can report why resolution failed.
type Result struct {
	Query string
	Kind  Kind
	Name  string
	Score int
}

// Resolve maps each query to at most one canonical name. Matching is
// case-sensitive and whitespace-sensitive in both branches. Candidates are
// scored in sorted order and only a strictly higher score displaces the
// running best, so ties go to the lexicographically smallest canonical name.
func Resolve(queries []string, canonical []string) []Result {
	set := make(map[string]struct{}, len(canonical))
	for _, c := range canonical {
		set[c] = struct{}{}
	}
	sorted := append([]string(nil), canonical...)
	sort.Strings(sorted)

	results := make([]Result, 0, len(queries))
	for _, q := range queries {
		if _, ok := set[q]; ok {
			results = append(results, Result{Query: q, Kind: Exact, Name: q})
			continue
		}

		bestName, bestScore := "", 0
		for _, c := range sorted {
			if s := fuzzy.Ratio(q, c); s > bestScore {
				bestName, bestScore = c, s
			}
		}

		if bestScore > Threshold {
			results = append(results, Result{Query: q, Kind: Fuzzy, Name: bestName, Score: bestScore})
		} else {
			results = append(results, Result{Query: q, Kind: NoMatch, Name: bestName, Score: bestScore})
		}
	}
	return results
}

// Resolved splits results into the ordered resolved facility list and the
// queries that matched nothing. Order follows the input queries; duplicates
// stay (two queries may resolve to the same name).
func Resolved(results []Result) (resolved, unmatched []string) {
	for _, r := range results {
		if r.Kind == NoMatch {
			unmatched = append(unmatched, r.Query)
		} else {
			resolved = append(resolved, r.Name)
		}
	}
	return resolved, unmatched
}

// SplitQueries parses the comma-separated facility input: items are trimmed
// and empty items dropped.
func SplitQueries(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if q := strings.TrimSpace(part); q != "" {
			out = append(out, q)
		}
	}
	return out
}
