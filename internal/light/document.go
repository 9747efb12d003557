package light

import "github.com/ivlev/volscene/internal/palette"

// Document is the persisted form of a Light
type Document struct {
	Name      string         `xml:"Name,attr" yaml:"name"`
	Theta     float32        `xml:"Theta,attr" yaml:"theta"`
	Phi       float32        `xml:"Phi,attr" yaml:"phi"`
	Width     float32        `xml:"Width,attr" yaml:"width"`
	Height    float32        `xml:"Height,attr" yaml:"height"`
	Intensity float32        `xml:"Intensity,attr" yaml:"intensity"`
	Distance  float32        `xml:"Distance,attr" yaml:"distance"`
	Color     palette.Swatch `xml:"Color" yaml:"color"`
}

// BackgroundDocument is the persisted form of a Background
type BackgroundDocument struct {
	Intensity   float32        `xml:"Intensity,attr" yaml:"intensity"`
	TopColor    palette.Swatch `xml:"TopColor" yaml:"top"`
	MiddleColor palette.Swatch `xml:"MiddleColor" yaml:"middle"`
	BottomColor palette.Swatch `xml:"BottomColor" yaml:"bottom"`
}

// Document returns the persisted form of the light
func (l *Light) Document() Document {
	return Document{
		Name:      l.props.Name,
		Theta:     l.props.Theta,
		Phi:       l.props.Phi,
		Width:     l.props.Width,
		Height:    l.props.Height,
		Intensity: l.props.Intensity,
		Distance:  l.props.Distance,
		Color:     palette.SwatchOf(l.props.Color),
	}
}

// ReadDocument loads d into the light and emits one change
func (l *Light) ReadDocument(d Document) {
	l.SetProperties(Properties{
		Name:      d.Name,
		Theta:     d.Theta,
		Phi:       d.Phi,
		Width:     d.Width,
		Height:    d.Height,
		Color:     d.Color.Opaque(),
		Intensity: d.Intensity,
		Distance:  d.Distance,
	})
}

// Document returns the persisted form of the background
func (b *Background) Document() BackgroundDocument {
	return BackgroundDocument{
		Intensity:   b.intensity,
		TopColor:    palette.SwatchOf(b.top),
		MiddleColor: palette.SwatchOf(b.middle),
		BottomColor: palette.SwatchOf(b.bottom),
	}
}

// ReadDocument loads d into the background and emits one change
func (b *Background) ReadDocument(d BackgroundDocument) {
	b.top = d.TopColor.Opaque()
	b.middle = d.MiddleColor.Opaque()
	b.bottom = d.BottomColor.Opaque()
	b.intensity = d.Intensity
	b.Changed.Emit(b)
}
