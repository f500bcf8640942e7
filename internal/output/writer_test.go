package output

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/caretrend/internal/csvread"
	"github.com/gyeh/caretrend/internal/measure"
	"github.com/gyeh/caretrend/internal/model"
)

func sampleTable() *model.Table {
	header := []string{
		model.ColFacilityName, model.ColCondition, model.ColMeasureID,
		model.ColScore, model.ColStartDate, model.ColEndDate,
	}
	return model.NewTable(header, [][]string{
		{"Mercy General", "Sepsis Care", "SEP_1", "61", "1/1/23", "3/31/23"},
		{"Mercy General", "Sepsis Care", "SEP_1", "Not Available", "4/1/23", "6/30/23"},
		{"Mercy General", "Sepsis Care", "OP_18b", "145", "1/1/23", "3/31/23"},
	})
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	tbl := sampleTable()

	if err := WriteCSV(tbl, path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got, err := csvread.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Len() != tbl.Len() {
		t.Fatalf("rows = %d, want %d", got.Len(), tbl.Len())
	}
	if got.Value(2, model.ColScore) != "145" {
		t.Errorf("score = %q", got.Value(2, model.ColScore))
	}
}

func TestWriteSeriesCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series.csv")
	g, _ := model.MeasureGroupByName("sep1")
	v := measure.NewView(sampleTable(), g)
	if v.Len() != 1 {
		t.Fatalf("view len = %d, want 1", v.Len())
	}

	if err := WriteSeriesCSV(v, path); err != nil {
		t.Fatalf("WriteSeriesCSV: %v", err)
	}
	got, err := csvread.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("rows = %d, want 1", got.Len())
	}
	if got.Value(0, model.ColScore) != "61" {
		t.Errorf("score = %q", got.Value(0, model.ColScore))
	}
	if got.Value(0, model.ColEndDate) != "2023-03-31" {
		t.Errorf("end date not ISO: %q", got.Value(0, model.ColEndDate))
	}
}

func TestWriteParquetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.parquet")
	tbl := sampleTable()

	if err := WriteParquet(tbl, path); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	r := parquet.NewGenericReader[exportRow](f)
	defer r.Close()
	if r.NumRows() != int64(tbl.Len()) {
		t.Fatalf("parquet rows = %d, want %d (file %d bytes)", r.NumRows(), tbl.Len(), st.Size())
	}
	rows := make([]exportRow, tbl.Len())
	if _, err := r.Read(rows); err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("read rows: %v", err)
	}
	if rows[0].FacilityName != "Mercy General" || rows[0].MeasureID != "SEP_1" {
		t.Errorf("row 0 = %+v", rows[0])
	}
}

func TestZipFolder(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "Mercy_General")
	if err := os.MkdirAll(filepath.Join(folder, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"Mercy_General_aggregate.csv": "a,b\n1,2\n",
		"SEP_1_series.csv":            "x\n",
		"nested/note.txt":             "n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(folder, filepath.FromSlash(name)), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := ZipFolder(folder, &buf); err != nil {
		t.Fatalf("ZipFolder: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, zf := range zr.File {
		names = append(names, zf.Name)
	}
	sort.Strings(names)
	want := []string{"Mercy_General_aggregate.csv", "SEP_1_series.csv", "nested/note.txt"}
	if len(names) != len(want) {
		t.Fatalf("entries = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, names[i], want[i])
		}
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	data := make([]byte, 1)
	if _, err := rc.Read(data); err != nil {
		t.Fatal(err)
	}
}
