package analyzer

import (
	"image"
	"math"
)

// maxSobel is the largest magnitude the 3x3 Sobel kernels produce on 8-bit input
var maxSobel = math.Sqrt(2) * 4 * 255

// GradientAnalyzer bins Sobel gradient magnitudes. Boundaries between
// materials show up as peaks, which helps placing transfer function nodes.
type GradientAnalyzer struct {
	// SkipFlat drops zero-gradient pixels, which otherwise dwarf every other bin
	SkipFlat bool
}

func NewGradientAnalyzer() *GradientAnalyzer {
	return &GradientAnalyzer{SkipFlat: true}
}

func (*GradientAnalyzer) Name() string { return "gradient" }

func (a *GradientAnalyzer) Accumulate(img *image.Gray, bins []int) {
	if len(bins) == 0 {
		return
	}

	// Sobel kernels
	gx := [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	gy := [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			var sumX, sumY int

			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					pixel := int(img.GrayAt(x+kx, y+ky).Y)
					sumX += pixel * gx[ky+1][kx+1]
					sumY += pixel * gy[ky+1][kx+1]
				}
			}

			if sumX == 0 && sumY == 0 && a.SkipFlat {
				continue
			}

			magnitude := math.Sqrt(float64(sumX*sumX + sumY*sumY))
			bins[binOf(int(magnitude/maxSobel*255), len(bins))]++
		}
	}
}
