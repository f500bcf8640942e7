package match

import (
	"reflect"
	"testing"
)

func TestResolve_ExactNeverFallsToFuzzy(t *testing.T) {
	// A near-identical neighbor must not displace a byte-for-byte hit.
	canonical := []string{"Mercy General", "Mercy Generals"}
	results := Resolve([]string{"Mercy General"}, canonical)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Kind != Exact {
		t.Fatalf("expected exact match, got %s", r.Kind)
	}
	if r.Name != "Mercy General" {
		t.Errorf("expected name to echo query, got %q", r.Name)
	}
}

func TestResolve_CaseSensitiveExact(t *testing.T) {
	results := Resolve([]string{"MERCY GENERAL"}, []string{"Mercy General"})
	if results[0].Kind == Exact {
		t.Error("exact branch must be case-sensitive")
	}
}

func TestResolve_OneSubstitutionFuzzy(t *testing.T) {
	results := Resolve([]string{"Generol Hospital"}, []string{"General Hospital"})
	r := results[0]
	if r.Kind != Fuzzy {
		t.Fatalf("expected fuzzy match, got %s (score %d)", r.Kind, r.Score)
	}
	if r.Name != "General Hospital" {
		t.Errorf("unexpected match: %q", r.Name)
	}
	if r.Score <= Threshold {
		t.Errorf("expected score above %d, got %d", Threshold, r.Score)
	}
}

func TestResolve_ShortNameBelowThreshold(t *testing.T) {
	// One substitution in a 3-character name: ratio 2*2/6 ≈ 67, not above 70.
	results := Resolve([]string{"axc"}, []string{"abc"})
	r := results[0]
	if r.Kind != NoMatch {
		t.Fatalf("expected no match, got %s (score %d)", r.Kind, r.Score)
	}
	if r.Score > Threshold {
		t.Errorf("score %d unexpectedly above threshold", r.Score)
	}
	if r.Name != "abc" {
		t.Errorf("expected best rejected candidate reported, got %q", r.Name)
	}
}

func TestResolve_NothingSimilar(t *testing.T) {
	results := Resolve([]string{"Zzyzx Nonexistent Facility"}, []string{"General Hospital"})
	if results[0].Kind != NoMatch {
		t.Fatalf("expected no match, got %s", results[0].Kind)
	}
}

func TestResolve_EmptyCanonicalSet(t *testing.T) {
	results := Resolve([]string{"Mercy General"}, nil)
	r := results[0]
	if r.Kind != NoMatch {
		t.Fatalf("expected no match against empty set, got %s", r.Kind)
	}
	if r.Name != "" || r.Score != 0 {
		t.Errorf("expected empty diagnostics, got %q/%d", r.Name, r.Score)
	}
}

func TestResolve_TieBreakLexicographic(t *testing.T) {
	// Both candidates differ from the query by the same one-character
	// suffix, so they score identically; the smaller name must win
	// regardless of input order.
	canonical := []string{"Mercy Hospital B", "Mercy Hospital A"}
	results := Resolve([]string{"Mercy Hospital"}, canonical)
	r := results[0]
	if r.Kind != Fuzzy {
		t.Fatalf("expected fuzzy match, got %s (score %d)", r.Kind, r.Score)
	}
	if r.Name != "Mercy Hospital A" {
		t.Errorf("tie should go to the lexicographically smallest name, got %q", r.Name)
	}
}

func TestResolved_OrderAndDuplicates(t *testing.T) {
	results := []Result{
		{Query: "b", Kind: Fuzzy, Name: "Beta"},
		{Query: "x", Kind: NoMatch},
		{Query: "a", Kind: Exact, Name: "Alpha"},
		{Query: "b2", Kind: Fuzzy, Name: "Beta"},
	}
	resolved, unmatched := Resolved(results)
	if !reflect.DeepEqual(resolved, []string{"Beta", "Alpha", "Beta"}) {
		t.Errorf("unexpected resolved list: %v", resolved)
	}
	if !reflect.DeepEqual(unmatched, []string{"x"}) {
		t.Errorf("unexpected unmatched list: %v", unmatched)
	}
}

func TestSplitQueries(t *testing.T) {
	got := SplitQueries(" Mercy General , ,St. Mary's Hospital,, General Hospital ")
	want := []string{"Mercy General", "St. Mary's Hospital", "General Hospital"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if SplitQueries("  ,  ,") != nil {
		t.Error("expected nil for all-empty input")
	}
}
