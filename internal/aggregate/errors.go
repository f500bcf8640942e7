package aggregate

import (
	"fmt"
	"strings"
)

// NoFacilitiesResolvedError means every query resolved to nothing; the run
// cannot proceed. Queries lists the inputs that failed to match.
type NoFacilitiesResolvedError struct {
	Queries []string
}

func (e *NoFacilitiesResolvedError) Error() string {
	if len(e.Queries) == 0 {
		return "no facilities resolved"
	}
	return fmt.Sprintf("no facilities resolved from queries: %s", strings.Join(e.Queries, ", "))
}

// NoDataFoundError means resolution succeeded but no source held a single
// row for any resolved facility. Facilities lists the resolved names for
// diagnostics.
type NoDataFoundError struct {
	Facilities []string
}

func (e *NoDataFoundError) Error() string {
	return fmt.Sprintf("no data found for facilities: %s", strings.Join(e.Facilities, ", "))
}

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
