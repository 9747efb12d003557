package engine

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/volscene/internal/activity"
	"github.com/ivlev/volscene/internal/config"
	"github.com/ivlev/volscene/internal/light"
	"github.com/ivlev/volscene/internal/palette"
	"github.com/ivlev/volscene/internal/transfer"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.PresetDir = filepath.Join(t.TempDir(), "presets")
	cfg.InputPath = ""
	cfg.Workers = 2
	return cfg
}

func writeVolume(t *testing.T, slices int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < slices; i++ {
		img := image.NewGray(image.Rect(0, 0, 16, 16))
		for p := range img.Pix {
			img.Pix[p] = uint8(i * 10)
		}
		f, err := os.Create(filepath.Join(dir, "slice_"+string(rune('a'+i))+".png"))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	return dir
}

func TestNewSession(t *testing.T) {
	s := NewSession(nil, nil)
	defer s.Close()

	if s.Rig.Count() != 2 || s.Rig.Name != "Default" {
		t.Errorf("Expected the default rig, got %d lights named %q", s.Rig.Count(), s.Rig.Name)
	}
	if s.Function.Count() != 2 {
		t.Errorf("Expected the default function, got %d nodes", s.Function.Count())
	}
}

func TestClose(t *testing.T) {
	rec := &activity.Recorder{}
	s := NewSession(testConfig(t), rec)

	s.Close()
	s.Close()

	if s.Rig.Count() != 0 || s.Function.Count() != 0 {
		t.Error("Close should empty the scene")
	}
	if len(rec.Entries) != 2 {
		t.Errorf("Expected one removal entry per light, got %v", rec.Messages())
	}
}

func TestSaveLoadPresets(t *testing.T) {
	cfg := testConfig(t)
	s := NewSession(cfg, nil)
	s.Rig.AddLight(light.New("Fill"))
	s.Function.AddNode(transfer.NewNode(90, 0.4, palette.RGB(10, 200, 10), true))

	lightingPath, transferPath, err := s.SavePresets()
	if err != nil {
		t.Fatalf("SavePresets failed: %v", err)
	}
	for _, p := range []string{lightingPath, transferPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Preset not written: %v", err)
		}
	}

	// A fresh session picks up the newest presets
	fresh := NewSession(cfg, nil)
	changed := 0
	fresh.Rig.Changed.Subscribe(func(struct{}) { changed++ })

	if err := fresh.LoadPresets(); err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if fresh.Rig.Count() != 3 || fresh.Rig.Light(2).Name() != "Fill" {
		t.Errorf("Lighting preset should replace the rig, got %d lights", fresh.Rig.Count())
	}
	if changed != 1 {
		t.Errorf("Expected one Changed for the replacement, got %d", changed)
	}
	if fresh.Rig.SelectedLight() != fresh.Rig.Light(0) {
		t.Error("First light should be selected after load")
	}
	if fresh.Function.Count() != 3 || fresh.Function.NodeAt(1).Position() != 90 {
		t.Errorf("Transfer preset not loaded, got %d nodes", fresh.Function.Count())
	}
}

func TestLoadPresetsMissing(t *testing.T) {
	s := NewSession(testConfig(t), nil)
	if err := s.LoadPresets(); err != nil {
		t.Fatalf("Missing presets should keep defaults: %v", err)
	}

	s.Config.LightingPreset = filepath.Join(t.TempDir(), "nope.xml")
	if err := s.LoadPresets(); err == nil {
		t.Error("An explicit preset that does not exist should fail")
	}
}

func TestBuildHistogram(t *testing.T) {
	cfg := testConfig(t)
	cfg.Bins = 256
	s := NewSession(cfg, nil)

	if err := s.BuildHistogram(context.Background(), writeVolume(t, 3)); err != nil {
		t.Fatalf("BuildHistogram failed: %v", err)
	}

	h := s.Function.Histogram()
	if len(h.Bins) != 256 || h.Max != 256 {
		t.Errorf("Expected 256 bins with max 256, got %d bins max %d", len(h.Bins), h.Max)
	}
	for _, v := range []int{0, 10, 20} {
		if h.Bins[v] != 256 {
			t.Errorf("Bin %d: expected 256, got %d", v, h.Bins[v])
		}
	}

	cfg.Analyzer = "fourier"
	if err := s.BuildHistogram(context.Background(), writeVolume(t, 1)); err == nil {
		t.Error("Expected error for unknown analyzer")
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	out := t.TempDir()
	cfg.InputPath = writeVolume(t, 2)
	cfg.LUTOutput = filepath.Join(out, "lut.png")
	cfg.QROutput = filepath.Join(out, "share.png")
	cfg.LUTMode = "smooth"

	s := NewSession(cfg, nil)
	defer s.Close()

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, p := range []string{cfg.LUTOutput, cfg.QROutput} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Output missing: %v", err)
		}
	}
	if len(s.Function.Histogram().Bins) == 0 {
		t.Error("Histogram not built")
	}

	cfg.LUTMode = "cubic"
	if err := s.Run(context.Background()); err == nil {
		t.Error("Expected error for unknown LUT mode")
	}
}
