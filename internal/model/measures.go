package model

// MeasureGroup is one reported clinical quality measure view. A group covers
// one or two Measure ID values that are charted together.
type MeasureGroup struct {
	Name     string   // config/CLI name, e.g. "sep1"
	Label    string   // human-readable title
	FileStem string   // output file stem, e.g. "SEP_1"
	IDs      []string // Measure ID values in the group
}

// AllMeasureGroups lists the supported measure groups in canonical order.
var AllMeasureGroups = []MeasureGroup{
	{Name: "sep1", Label: "SEP_1", FileStem: "SEP_1", IDs: []string{"SEP_1"}},
	{Name: "op18b", Label: "Time in ED", FileStem: "Time_in_ED", IDs: []string{"OP_18b"}},
	{Name: "severe-sepsis", Label: "Severe Sepsis", FileStem: "Severe_Sepsis", IDs: []string{"SEV_SH_3HR", "SEV_SEP_6HR"}},
	{Name: "sepsis-shock", Label: "Sepsis Shock", FileStem: "Sepsis_Shock", IDs: []string{"SEP_SH_3HR", "SEP_SH_6HR"}},
}

// MeasureGroupByName returns the group for the given config name, or ok=false.
func MeasureGroupByName(name string) (MeasureGroup, bool) {
	for _, g := range AllMeasureGroups {
		if g.Name == name {
			return g, true
		}
	}
	return MeasureGroup{}, false
}

// MeasureGroupNames returns the config names of all groups.
func MeasureGroupNames() []string {
	names := make([]string, len(AllMeasureGroups))
	for i, g := range AllMeasureGroups {
		names[i] = g.Name
	}
	return names
}
