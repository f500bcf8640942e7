package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gyeh/caretrend/internal/measure"
	"github.com/gyeh/caretrend/internal/model"
)

// WriteCSV writes the table, header first, to path.
func WriteCSV(t *model.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output csv: %w", err)
	}
	return f.Close()
}

// WriteSeriesCSV writes one measure view as a cleaned time series: facility,
// measure ID, numeric score, and the end date in ISO form. This is the shape
// handed to charting tools.
func WriteSeriesCSV(v *measure.View, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create series csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{model.ColFacilityName, model.ColMeasureID, model.ColScore, model.ColEndDate}); err != nil {
		f.Close()
		return fmt.Errorf("write series header: %w", err)
	}
	for i := range v.Table.Rows {
		rec := []string{
			v.Table.Value(i, model.ColFacilityName),
			v.Table.Value(i, model.ColMeasureID),
			strconv.FormatFloat(v.Scores[i], 'f', -1, 64),
			v.Dates[i].Format("2006-01-02"),
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("write series row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush series csv: %w", err)
	}
	return f.Close()
}
