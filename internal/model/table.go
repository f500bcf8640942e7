package model

// Well-known column names in CMS Timely and Effective Care exports.
const (
	ColFacilityName = "Facility Name"
	ColMeasureID    = "Measure ID"
	ColScore        = "Score"
	ColEndDate      = "End Date"
	ColStartDate    = "Start Date"
	ColCondition    = "Condition"
)

// Table is one loaded tabular source, or an aggregate built from several:
// the literal header row plus data rows, every value kept as a string.
// Columns beyond the well-known ones pass through untouched.
type Table struct {
	Header []string
	Rows   [][]string

	cols map[string]int
}

// NewTable builds a Table and indexes the header. When a column name appears
// more than once, the first occurrence wins.
func NewTable(header []string, rows [][]string) *Table {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := cols[h]; !ok {
			cols[h] = i
		}
	}
	return &Table{Header: header, Rows: rows, cols: cols}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the index of the named column in the header.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.cols[name]
	return i, ok
}

// Value returns the named column's value in row i, or "" when the column is
// absent or the row is short.
func (t *Table) Value(i int, name string) string {
	j, ok := t.cols[name]
	if !ok || i < 0 || i >= len(t.Rows) || j >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][j]
}

// Empty returns a zero-row table sharing this table's header.
func (t *Table) Empty() *Table {
	return NewTable(t.Header, nil)
}
