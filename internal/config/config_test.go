package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DataFile != "housing_data.csv" || c.Locale != "ru" || c.Format != "text" || c.AllowBlank {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestSaveLoadRoundTripAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{DataFile: "houses.tsv", Locale: "en", Format: "yaml", Delimiter: "tab", AllowBlank: true}
	if err := Save(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *c != *in {
		t.Fatalf("round trip mismatch: got %+v want %+v", c, in)
	}

	t.Setenv("HOUSESTAT_FORMAT", "json")
	c, err = Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Format != "json" {
		t.Fatalf("env override not applied: %q", c.Format)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("locale: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
