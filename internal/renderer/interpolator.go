package renderer

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/ivlev/volscene/internal/transfer"
)

// Mode selects how values between two nodes are interpolated
type Mode int

const (
	Linear Mode = iota
	Smooth      // ease in-out between nodes
)

func (m Mode) String() string {
	if m == Smooth {
		return "smooth"
	}
	return "linear"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "linear", "":
		return Linear, nil
	case "smooth":
		return Smooth, nil
	default:
		return Linear, fmt.Errorf("unknown interpolation mode: %s", s)
	}
}

// Evaluate returns the color and opacity of fn at density. Outside the
// first and last node the end values are held; an empty function is
// fully transparent. Opacity is clamped to [0, 1] for the alpha channel.
func Evaluate(fn *transfer.Function, density float32, mode Mode) color.NRGBA {
	nodes := fn.Nodes()
	if len(nodes) == 0 {
		return color.NRGBA{}
	}

	first, last := nodes[0], nodes[len(nodes)-1]
	if density <= first.Position() {
		return sample(first.Color(), first.Opacity())
	}
	if density >= last.Position() {
		return sample(last.Color(), last.Opacity())
	}

	// Find surrounding nodes
	prev, next := first, last
	for i := 0; i < len(nodes)-1; i++ {
		if density >= nodes[i].Position() && density < nodes[i+1].Position() {
			prev, next = nodes[i], nodes[i+1]
			break
		}
	}

	var t float32
	if delta := next.Position() - prev.Position(); delta > 0 {
		t = (density - prev.Position()) / delta
	}
	if mode == Smooth {
		t = easeInOutCubic(t)
	}

	pc, nc := prev.Color(), next.Color()
	c := color.RGBA{
		R: lerp8(pc.R, nc.R, t),
		G: lerp8(pc.G, nc.G, t),
		B: lerp8(pc.B, nc.B, t),
	}
	return sample(c, lerp(prev.Opacity(), next.Opacity(), t))
}

func sample(c color.RGBA, opacity float32) color.NRGBA {
	a := math32.Min(1, math32.Max(opacity, 0))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math32.Round(a * 255))}
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(math32.Round(lerp(float32(a), float32(b), t)))
}

// easeInOutCubic applies smooth easing function
func easeInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// pow calculates x^n
func pow(x float32, n int) float32 {
	result := float32(1)
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
