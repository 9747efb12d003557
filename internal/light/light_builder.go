package light

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Option configures a Light during construction
type Option func(*Light)

// WithAngles sets the angular position in degrees
func WithAngles(theta, phi float32) Option {
	return func(l *Light) {
		l.props.Theta = theta
		l.props.Phi = phi
	}
}

// WithSize sets the angular width and height
func WithSize(width, height float32) Option {
	return func(l *Light) {
		l.props.Width = width
		l.props.Height = height
	}
}

func WithColor(c color.RGBA) Option {
	return func(l *Light) {
		l.props.Color = c
	}
}

func WithIntensity(intensity float32) Option {
	return func(l *Light) {
		l.props.Intensity = intensity
	}
}

func WithDistance(distance float32) Option {
	return func(l *Light) {
		l.props.Distance = distance
	}
}

// Direction returns the unit vector pointing from the volume center towards
// the light, with Y up.
func (l *Light) Direction() [3]float32 {
	theta := l.props.Theta * math32.Pi / 180
	phi := l.props.Phi * math32.Pi / 180
	return [3]float32{
		math32.Cos(phi) * math32.Sin(theta),
		math32.Sin(phi),
		math32.Cos(phi) * math32.Cos(theta),
	}
}
