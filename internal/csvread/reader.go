package csvread

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gyeh/caretrend/internal/model"
)

// SourceReadError marks one source as unreadable or malformed. Callers skip
// the offending source and continue the batch; it is never fatal on its own.
type SourceReadError struct {
	Source string
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read source %s: %s", e.Source, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// Read parses delimited text into a Table. The first record becomes the
// literal header; every later record is a data row. Parse failures come back
// as *SourceReadError tagged with name.
func Read(name string, r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, &SourceReadError{Source: name, Err: err}
	}
	if len(records) == 0 {
		return nil, &SourceReadError{Source: name, Err: errors.New("empty source")}
	}

	header := records[0]
	// Excel exports often carry a UTF-8 BOM on the first header cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return model.NewTable(header, records[1:]), nil
}

// ReadFile opens and parses a CSV file on disk.
func ReadFile(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceReadError{Source: path, Err: err}
	}
	defer f.Close()
	return Read(path, f)
}

// RequireColumns checks that the named columns are present in the table's
// header, returning a *SourceReadError listing any that are missing.
func RequireColumns(name string, t *model.Table, cols ...string) error {
	var missing []string
	for _, c := range cols {
		if _, ok := t.Column(c); !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SourceReadError{
			Source: name,
			Err:    fmt.Errorf("missing required columns: %s", strings.Join(missing, ", ")),
		}
	}
	return nil
}
