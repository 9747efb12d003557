package volume

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// Stack is a volume stored as an ordered list of 2D slices
type Stack interface {
	SliceCount() int
	SliceBounds(index int) (width, height int, err error)
	ReadSlice(index int) (image.Image, error)
	Close() error
}

// documentExts are opened through MuPDF; every page becomes one slice
var documentExts = map[string]bool{
	".pdf":  true,
	".xps":  true,
	".cbz":  true,
	".epub": true,
}

// Open picks the stack implementation for path: a directory or single image
// becomes an ImageStack, a document becomes a DocumentStack rendered at dpi.
func Open(path string, dpi int) (Stack, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open volume %s: %w", path, err)
	}

	if !fi.IsDir() && documentExts[strings.ToLower(filepath.Ext(path))] {
		return NewDocumentStack(path, dpi)
	}
	return NewImageStack(path)
}

func checkIndex(s Stack, index int) error {
	if index < 0 || index >= s.SliceCount() {
		return fmt.Errorf("slice %d out of range [0,%d)", index, s.SliceCount())
	}
	return nil
}
