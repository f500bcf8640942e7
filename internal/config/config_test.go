package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gyeh/caretrend/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caretrend.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "measures:\n  - sep1\n  - op18b\n")
	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if !reflect.DeepEqual(c.Measures, []string{"sep1", "op18b"}) {
		t.Errorf("measures = %v", c.Measures)
	}
}

func TestLoadFromFile_UnknownMeasure(t *testing.T) {
	path := writeConfig(t, "measures:\n  - sep1\n  - bogus\n")
	var c Config
	err := c.LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for unknown measure group")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the offender: %v", err)
	}
}

func TestLoadFromFile_EmptyDefaultsToAll(t *testing.T) {
	path := writeConfig(t, "measures: []\n")
	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if !reflect.DeepEqual(c.Measures, model.MeasureGroupNames()) {
		t.Errorf("measures = %v", c.Measures)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	var c Config
	if err := c.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	c := Config{Facilities: "Mercy General", DataDir: dir}
	if err := c.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	if len(c.Measures) != len(model.AllMeasureGroups) {
		t.Errorf("measures not defaulted: %v", c.Measures)
	}

	c = Config{DataDir: dir}
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing facilities")
	}

	c = Config{Facilities: "Mercy General"}
	if err := c.Validate(); err == nil {
		t.Error("expected error when no data or blob dir is set")
	}

	c = Config{Facilities: "Mercy General", DataDir: filepath.Join(dir, "absent")}
	if err := c.Validate(); err == nil {
		t.Error("expected error for inaccessible data dir")
	}
}
