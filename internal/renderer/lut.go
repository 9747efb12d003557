package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/ivlev/volscene/internal/transfer"
)

// DefaultLUTSize gives one entry per 8-bit density
const DefaultLUTSize = 256

// BakeLUT samples fn at size evenly spaced densities across its domain,
// from RangeMin to RangeMax inclusive.
func BakeLUT(fn *transfer.Function, size int, mode Mode) []color.NRGBA {
	if size <= 0 {
		size = DefaultLUTSize
	}

	lut := make([]color.NRGBA, size)
	for i := range lut {
		var t float32
		if size > 1 {
			t = float32(i) / float32(size-1)
		}
		lut[i] = Evaluate(fn, fn.RangeMin()+fn.Range()*t, mode)
	}
	return lut
}

// LUTImage lays the table out as a size x 1 strip, the layout a 1D texture
// upload expects.
func LUTImage(lut []color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(lut), 1))
	for x, c := range lut {
		img.SetNRGBA(x, 0, c)
	}
	return img
}

// WriteLUT bakes fn and writes it to path as a PNG strip
func WriteLUT(path string, fn *transfer.Function, size int, mode Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create LUT %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, LUTImage(BakeLUT(fn, size, mode))); err != nil {
		return fmt.Errorf("failed to encode LUT %s: %w", path, err)
	}
	return f.Close()
}
