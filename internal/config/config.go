package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	PresetDir   string `yaml:"preset_dir"`
	InputPath   string `yaml:"input"`
	Analyzer    string `yaml:"analyzer"`
	Bins        int    `yaml:"bins"`
	Workers     int    `yaml:"workers"` // 0 picks the logical CPU count
	PreviewEdge int    `yaml:"preview_edge"`
	DPI         int    `yaml:"dpi"`

	LightingPreset string `yaml:"lighting"`
	TransferPreset string `yaml:"transfer"`

	LUTSize   int    `yaml:"lut_size"`
	LUTMode   string `yaml:"lut_mode"`
	LUTOutput string `yaml:"lut_output"`

	QRSize   int    `yaml:"qr_size"`
	QROutput string `yaml:"qr_output"`
}

func Default() *Config {
	return &Config{
		PresetDir:   "presets",
		InputPath:   "input",
		Analyzer:    "luminance",
		Bins:        256,
		PreviewEdge: 512,
		DPI:         72,
		LUTSize:     256,
		LUTMode:     "linear",
		QRSize:      512,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
