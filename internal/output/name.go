package output

import (
	"fmt"
	"strings"
)

// MultiFacilityFileName is the aggregate CSV name whenever more than one
// facility resolved.
const MultiFacilityFileName = "Aggregated_Facilities_Data.csv"

// Sanitize replaces space, forward slash, and backslash with underscore.
// No other characters are escaped.
func Sanitize(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name
}

// Names derives the output folder and aggregate file name from the resolved
// facility list. One facility: folder is its sanitized name and the file is
// <name>_aggregate.csv. Several: the folder joins the first three sanitized
// names, appending _and_<N-3>_others past three, and the file name is fixed.
// An empty list yields empty names; callers guard against it upstream.
func Names(resolved []string) (folder, file string) {
	switch {
	case len(resolved) == 0:
		return "", ""
	case len(resolved) == 1:
		folder = Sanitize(resolved[0])
		return folder, folder + "_aggregate.csv"
	default:
		first := resolved
		if len(first) > 3 {
			first = first[:3]
		}
		parts := make([]string, len(first))
		for i, name := range first {
			parts[i] = Sanitize(name)
		}
		folder = strings.Join(parts, "_")
		if extra := len(resolved) - 3; extra > 0 {
			folder = fmt.Sprintf("%s_and_%d_others", folder, extra)
		}
		return folder, MultiFacilityFileName
	}
}
