package output

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/caretrend/internal/model"
)

// exportRow is the flat schema for Parquet export. Arbitrary passthrough
// columns cannot be typed into a static schema, so only the fixed CMS
// columns are carried; values missing from a row export as "".
type exportRow struct {
	FacilityName string `parquet:"facility_name"`
	Condition    string `parquet:"condition"`
	MeasureID    string `parquet:"measure_id"`
	Score        string `parquet:"score"`
	StartDate    string `parquet:"start_date"`
	EndDate      string `parquet:"end_date"`
}

// WriteParquet exports the aggregated table to a Parquet file at path.
func WriteParquet(t *model.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	rows := make([]exportRow, t.Len())
	for i := range t.Rows {
		rows[i] = exportRow{
			FacilityName: t.Value(i, model.ColFacilityName),
			Condition:    t.Value(i, model.ColCondition),
			MeasureID:    t.Value(i, model.ColMeasureID),
			Score:        t.Value(i, model.ColScore),
			StartDate:    t.Value(i, model.ColStartDate),
			EndDate:      t.Value(i, model.ColEndDate),
		}
	}

	w := parquet.NewGenericWriter[exportRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
