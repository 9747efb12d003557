package volume

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageExts lists the slice formats registered with image.Decode
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".webp": true,
}

// ImageStack reads slices from image files; a directory is sorted by name
type ImageStack struct {
	paths []string
}

func NewImageStack(path string) (*ImageStack, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no slice images in %s", path)
	}

	return &ImageStack{paths: paths}, nil
}

func (s *ImageStack) SliceCount() int {
	return len(s.paths)
}

// Paths returns the slice files in stack order
func (s *ImageStack) Paths() []string {
	return append([]string(nil), s.paths...)
}

func (s *ImageStack) SliceBounds(index int) (int, int, error) {
	if err := checkIndex(s, index); err != nil {
		return 0, 0, err
	}

	f, err := os.Open(s.paths[index])
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode %s: %w", s.paths[index], err)
	}
	return cfg.Width, cfg.Height, nil
}

func (s *ImageStack) ReadSlice(index int) (image.Image, error) {
	if err := checkIndex(s, index); err != nil {
		return nil, err
	}

	f, err := os.Open(s.paths[index])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.paths[index], err)
	}
	return img, nil
}

func (s *ImageStack) Close() error {
	return nil
}
