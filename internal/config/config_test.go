package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "volscene.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volscene.yaml")
	data := "analyzer: gradient\nbins: 64\nlut_mode: smooth\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Analyzer != "gradient" || cfg.Bins != 64 || cfg.LUTMode != "smooth" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.PresetDir != "presets" || cfg.LUTSize != 256 {
		t.Errorf("Unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volscene.yaml")
	if err := os.WriteFile(path, []byte("bins: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volscene.yaml")

	cfg := Default()
	cfg.Workers = 3
	cfg.QROutput = "share.png"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}
