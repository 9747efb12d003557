package palette

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB returns an opaque color
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Parse accepts "#rgb", "#rrggbb", "#rrggbbaa", "transparent" and CSS color names
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		return ParseHex(s)
	}

	low := strings.ToLower(s)
	if low == "transparent" {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}, nil
	}
	c, ok := colornames.Map[low]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color name: %s", s)
	}
	return c, nil
}

// ParseHex parses a hex color with or without the leading '#'
func ParseHex(s string) (color.RGBA, error) {
	x := strings.TrimPrefix(s, "#")
	var r, g, b int
	a := 255

	var err error
	switch len(x) {
	case 3:
		_, err = fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("could not parse hex color: %s", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("could not parse hex color %s: %w", s, err)
	}

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque
func Hex(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
