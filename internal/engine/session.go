package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ivlev/volscene/internal/activity"
	"github.com/ivlev/volscene/internal/analyzer"
	"github.com/ivlev/volscene/internal/config"
	"github.com/ivlev/volscene/internal/lighting"
	"github.com/ivlev/volscene/internal/preset"
	"github.com/ivlev/volscene/internal/renderer"
	"github.com/ivlev/volscene/internal/share"
	"github.com/ivlev/volscene/internal/system"
	"github.com/ivlev/volscene/internal/transfer"
	"github.com/ivlev/volscene/internal/volume"
)

// Session owns the lighting rig and transfer function of one editor
// process. Create it once at startup and Close it on shutdown.
type Session struct {
	Config   *config.Config
	Rig      *lighting.Rig
	Function *transfer.Function
	Logger   activity.Logger

	closed bool
}

// NewSession starts from the default rig and function
func NewSession(cfg *config.Config, logger activity.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = activity.Discard{}
	}

	rig := lighting.NewRig(logger)
	rig.Assign(lighting.Default())

	return &Session{
		Config:   cfg,
		Rig:      rig,
		Function: transfer.Default(),
		Logger:   logger,
	}
}

// Close drops every light and node so observers see the scene emptied
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.Rig.SetSelectedLight(nil)
	for s.Rig.Count() > 0 {
		s.Rig.RemoveLightAt(s.Rig.Count() - 1)
	}

	s.Function.SetSelectedNode(0)
	s.Function.Clear()
}

// LoadLighting replaces the rig contents with the preset at path
func (s *Session) LoadLighting(path string) error {
	loaded := lighting.NewRig(nil)
	if err := loaded.Load(path); err != nil {
		return err
	}
	s.Rig.Assign(loaded)
	s.Rig.SetSelectedLightIndex(0)
	return nil
}

// LoadTransfer replaces the function nodes with the preset at path. The
// histogram is kept.
func (s *Session) LoadTransfer(path string) error {
	return s.Function.Load(path)
}

// SavePresets writes both presets as timestamped XML files in the preset
// directory and returns their paths.
func (s *Session) SavePresets() (lightingPath, transferPath string, err error) {
	if err := os.MkdirAll(s.Config.PresetDir, 0755); err != nil {
		return "", "", err
	}

	lightingPath = preset.GeneratePath(s.Config.PresetDir, lighting.Kind, preset.FormatXML)
	if err := s.Rig.Save(lightingPath); err != nil {
		return "", "", err
	}

	transferPath = preset.GeneratePath(s.Config.PresetDir, transfer.Kind, preset.FormatXML)
	if err := s.Function.Save(transferPath); err != nil {
		return "", "", err
	}
	return lightingPath, transferPath, nil
}

// LoadPresets loads the configured presets, falling back to the newest
// preset of each kind in the preset directory. Missing presets keep the
// defaults.
func (s *Session) LoadPresets() error {
	lightingPath := s.Config.LightingPreset
	if lightingPath == "" {
		lightingPath, _ = preset.FindLatest(s.Config.PresetDir, lighting.Kind)
	}
	if lightingPath != "" {
		if err := s.LoadLighting(lightingPath); err != nil {
			return err
		}
		fmt.Printf("[*] Lighting preset: %s\n", lightingPath)
	}

	transferPath := s.Config.TransferPreset
	if transferPath == "" {
		transferPath, _ = preset.FindLatest(s.Config.PresetDir, transfer.Kind)
	}
	if transferPath != "" {
		if err := s.LoadTransfer(transferPath); err != nil {
			return err
		}
		fmt.Printf("[*] Transfer preset: %s\n", transferPath)
	}
	return nil
}

// BuildHistogram bins every slice of the volume at input and hands the
// result to the transfer function.
func (s *Session) BuildHistogram(ctx context.Context, input string) error {
	a, err := analyzer.NewAnalyzer(s.Config.Analyzer)
	if err != nil {
		return err
	}

	stack, err := volume.Open(input, s.Config.DPI)
	if err != nil {
		return err
	}
	defer stack.Close()

	if stack.SliceCount() == 0 {
		return fmt.Errorf("volume %s has no slices", input)
	}

	workers := s.Config.Workers
	if workers <= 0 {
		workers = system.RecommendedWorkers()
	}

	fmt.Printf("[*] Volume: %s | Slices: %d | Analyzer: %s | Workers: %d\n",
		input, stack.SliceCount(), a.Name(), workers)

	bins, err := analyzer.Compute(ctx, stack, a, analyzer.Options{
		Bins:        s.Config.Bins,
		Workers:     workers,
		PreviewEdge: s.Config.PreviewEdge,
	})
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}

	s.Function.SetHistogram(bins)
	return nil
}

// ExportLUT bakes the transfer function to a PNG strip
func (s *Session) ExportLUT(path string) error {
	mode, err := renderer.ParseMode(s.Config.LUTMode)
	if err != nil {
		return err
	}
	return renderer.WriteLUT(path, s.Function, s.Config.LUTSize, mode)
}

// ShareTransfer writes the transfer function preset as a QR code
func (s *Session) ShareTransfer(path string) error {
	return share.WriteFile(path, s.Function.Document(), s.Config.QRSize)
}

// Run loads presets, builds the histogram and writes the configured outputs
func (s *Session) Run(ctx context.Context) error {
	startTime := time.Now()

	if err := s.LoadPresets(); err != nil {
		return err
	}

	// Гистограмма строится только при наличии входного тома
	var histogramTime time.Duration
	if s.Config.InputPath != "" {
		input, err := system.FindLatestVolume(s.Config.InputPath)
		if err != nil {
			return fmt.Errorf("no volume at %s: %w", s.Config.InputPath, err)
		}

		histogramStart := time.Now()
		if err := s.BuildHistogram(ctx, input); err != nil {
			return err
		}
		histogramTime = time.Since(histogramStart)
	}

	if s.Config.LUTOutput != "" {
		if err := s.ExportLUT(s.Config.LUTOutput); err != nil {
			return err
		}
		fmt.Printf("[*] LUT: %s\n", s.Config.LUTOutput)
	}

	// QR-код не критичен: слишком большой пресет только пропускается
	if s.Config.QROutput != "" {
		if err := s.ShareTransfer(s.Config.QROutput); err != nil {
			log.Printf("[!] QR export skipped: %v", err)
		} else {
			fmt.Printf("[*] QR code: %s\n", s.Config.QROutput)
		}
	}

	h := s.Function.Histogram()
	fmt.Printf("[*] Lights: %d | Nodes: %d | Histogram bins: %d (max %d)\n",
		s.Rig.Count(), s.Function.Count(), len(h.Bins), h.Max)
	fmt.Printf("[*] Histogram: %v | Total: %v\n",
		histogramTime.Round(time.Millisecond), time.Since(startTime).Round(time.Millisecond))

	return nil
}
