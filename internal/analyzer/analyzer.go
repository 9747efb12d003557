package analyzer

import "image"

// Analyzer maps the pixels of one grayscale slice to histogram bins
type Analyzer interface {
	Name() string
	// Accumulate adds the slice to bins; len(bins) is the bin count
	Accumulate(img *image.Gray, bins []int)
}

// binOf maps v in [0, 255] to one of n bins
func binOf(v, n int) int {
	b := v * n / 256
	if b >= n {
		b = n - 1
	}
	return b
}

// LuminanceAnalyzer bins raw slice densities
type LuminanceAnalyzer struct{}

func NewLuminanceAnalyzer() *LuminanceAnalyzer {
	return &LuminanceAnalyzer{}
}

func (LuminanceAnalyzer) Name() string { return "luminance" }

func (LuminanceAnalyzer) Accumulate(img *image.Gray, bins []int) {
	if len(bins) == 0 {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for _, v := range row {
			bins[binOf(int(v), len(bins))]++
		}
	}
}
