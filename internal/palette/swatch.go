package palette

import (
	"image/color"

	"gopkg.in/yaml.v3"
)

// Swatch is the persisted form of a color: R/G/B/A attributes in XML and a
// hex string (or CSS name) in YAML.
type Swatch struct {
	R uint8 `xml:"R,attr"`
	G uint8 `xml:"G,attr"`
	B uint8 `xml:"B,attr"`
	A uint8 `xml:"A,attr"`
}

// SwatchOf converts c for persistence
func SwatchOf(c color.RGBA) Swatch {
	return Swatch{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA converts the swatch back to a color
func (s Swatch) RGBA() color.RGBA {
	return color.RGBA{R: s.R, G: s.G, B: s.B, A: s.A}
}

// Opaque returns the swatch color with alpha forced to 255
func (s Swatch) Opaque() color.RGBA {
	return color.RGBA{R: s.R, G: s.G, B: s.B, A: 0xff}
}

func (s Swatch) MarshalYAML() (interface{}, error) {
	return Hex(s.RGBA()), nil
}

func (s *Swatch) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	c, err := Parse(text)
	if err != nil {
		return err
	}
	*s = SwatchOf(c)
	return nil
}
