package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GeneratePath creates a timestamped preset filename inside dir
func GeneratePath(dir, kind string, f Format) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", kind, timestamp, f.Ext()))
}

// FindLatest finds the most recently modified preset of the given kind in dir
func FindLatest(dir, kind string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read preset directory: %w", err)
	}

	type candidate struct {
		path string
		mod  time.Time
	}

	var presets []candidate
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), kind+"_") {
			continue
		}
		if _, err := FormatOf(entry.Name()); err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		presets = append(presets, candidate{path: filepath.Join(dir, entry.Name()), mod: info.ModTime()})
	}

	if len(presets) == 0 {
		return "", fmt.Errorf("no %s presets found in %s", kind, dir)
	}

	// Newest first
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].mod.After(presets[j].mod)
	})

	return presets[0].path, nil
}
