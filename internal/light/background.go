package light

import (
	"image/color"

	"github.com/ivlev/volscene/internal/event"
	"github.com/ivlev/volscene/internal/palette"
)

// Background is the environment gradient behind the volume
type Background struct {
	top       color.RGBA
	middle    color.RGBA
	bottom    color.RGBA
	intensity float32

	Changed event.Feed[*Background]
}

// NewBackground creates a white background
func NewBackground() *Background {
	white := palette.RGB(255, 255, 255)
	return &Background{
		top:       white,
		middle:    white,
		bottom:    white,
		intensity: 100,
	}
}

// CopyFrom takes over the data of other and emits one change.
// Subscribers of b are kept.
func (b *Background) CopyFrom(other *Background) {
	b.top = other.top
	b.middle = other.middle
	b.bottom = other.bottom
	b.intensity = other.intensity
	b.Changed.Emit(b)
}

func (b *Background) TopColor() color.RGBA { return b.top }
func (b *Background) MiddleColor() color.RGBA { return b.middle }
func (b *Background) BottomColor() color.RGBA { return b.bottom }
func (b *Background) Intensity() float32 { return b.intensity }

func (b *Background) SetTopColor(c color.RGBA) {
	b.top = c
	b.Changed.Emit(b)
}

func (b *Background) SetMiddleColor(c color.RGBA) {
	b.middle = c
	b.Changed.Emit(b)
}

func (b *Background) SetBottomColor(c color.RGBA) {
	b.bottom = c
	b.Changed.Emit(b)
}

func (b *Background) SetIntensity(intensity float32) {
	b.intensity = intensity
	b.Changed.Emit(b)
}
