package light

import (
	"image/color"

	"github.com/ivlev/volscene/internal/event"
	"github.com/ivlev/volscene/internal/palette"
)

// Properties is the plain data of a light source
type Properties struct {
	Name      string
	Theta     float32 // azimuth in degrees
	Phi       float32 // elevation in degrees
	Width     float32 // angular width
	Height    float32 // angular height
	Color     color.RGBA
	Intensity float32
	Distance  float32
}

// Light is one area light of a lighting rig.
//
// Every setter emits PropertiesChanged with the light itself. Values are
// stored as given; range checks belong to the editing widgets.
type Light struct {
	props Properties

	PropertiesChanged event.Feed[*Light]
}

// New creates a light with the editor defaults and any provided options applied
func New(name string, opts ...Option) *Light {
	l := &Light{
		props: Properties{
			Name:      name,
			Theta:     0,
			Phi:       45,
			Width:     1,
			Height:    1,
			Color:     palette.RGB(255, 255, 255),
			Intensity: 100,
			Distance:  1,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromProperties creates a light holding a copy of p
func FromProperties(p Properties) *Light {
	return &Light{props: p}
}

// Clone returns a copy of the light data with no subscribers
func (l *Light) Clone() *Light {
	return &Light{props: l.props}
}

// Equal reports whether both lights hold the same data
func (l *Light) Equal(other *Light) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.props == other.props
}

func (l *Light) Properties() Properties {
	return l.props
}

// SetProperties replaces all data at once and emits a single change
func (l *Light) SetProperties(p Properties) {
	l.props = p
	l.changed()
}

func (l *Light) Name() string { return l.props.Name }
func (l *Light) Theta() float32 { return l.props.Theta }
func (l *Light) Phi() float32 { return l.props.Phi }
func (l *Light) Width() float32 { return l.props.Width }
func (l *Light) Height() float32 { return l.props.Height }
func (l *Light) Color() color.RGBA { return l.props.Color }
func (l *Light) Intensity() float32 { return l.props.Intensity }
func (l *Light) Distance() float32 { return l.props.Distance }

func (l *Light) SetName(name string) {
	l.props.Name = name
	l.changed()
}

func (l *Light) SetTheta(theta float32) {
	l.props.Theta = theta
	l.changed()
}

func (l *Light) SetPhi(phi float32) {
	l.props.Phi = phi
	l.changed()
}

func (l *Light) SetWidth(width float32) {
	l.props.Width = width
	l.changed()
}

func (l *Light) SetHeight(height float32) {
	l.props.Height = height
	l.changed()
}

func (l *Light) SetColor(c color.RGBA) {
	l.props.Color = c
	l.changed()
}

func (l *Light) SetIntensity(intensity float32) {
	l.props.Intensity = intensity
	l.changed()
}

func (l *Light) SetDistance(distance float32) {
	l.props.Distance = distance
	l.changed()
}

func (l *Light) changed() {
	l.PropertiesChanged.Emit(l)
}
