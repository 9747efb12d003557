package light

import (
	"math"
	"testing"

	"github.com/ivlev/volscene/internal/palette"
)

func TestNewWithOptions(t *testing.T) {
	l := New("Key",
		WithAngles(180, 45),
		WithSize(0.7, 0.7),
		WithColor(palette.RGB(255, 228, 165)),
		WithIntensity(5000),
		WithDistance(1.25),
	)

	if l.Name() != "Key" || l.Theta() != 180 || l.Phi() != 45 {
		t.Errorf("Unexpected light: %+v", l.Properties())
	}
	if l.Width() != 0.7 || l.Height() != 0.7 {
		t.Errorf("Unexpected size %.2fx%.2f", l.Width(), l.Height())
	}
	if l.Intensity() != 5000 || l.Distance() != 1.25 {
		t.Errorf("Unexpected intensity/distance %.2f/%.2f", l.Intensity(), l.Distance())
	}
	if l.Color() != palette.RGB(255, 228, 165) {
		t.Errorf("Unexpected color %v", l.Color())
	}
}

func TestSettersEmit(t *testing.T) {
	l := New("A")
	count := 0
	l.PropertiesChanged.Subscribe(func(got *Light) {
		if got != l {
			t.Errorf("Event carries the wrong light")
		}
		count++
	})

	l.SetName("B")
	l.SetTheta(1)
	l.SetPhi(2)
	l.SetWidth(3)
	l.SetHeight(4)
	l.SetColor(palette.RGB(1, 2, 3))
	l.SetIntensity(-5) // stored as given
	l.SetDistance(6)

	if count != 8 {
		t.Errorf("Expected 8 change events, got %d", count)
	}
	if l.Intensity() != -5 {
		t.Errorf("Expected unclamped intensity, got %f", l.Intensity())
	}
}

func TestCloneDropsSubscribers(t *testing.T) {
	l := New("A", WithIntensity(42))
	l.PropertiesChanged.Subscribe(func(*Light) {})

	c := l.Clone()
	if c == l {
		t.Fatal("Clone returned the same pointer")
	}
	if !c.Equal(l) {
		t.Error("Clone should hold equal data")
	}
	if c.PropertiesChanged.Len() != 0 {
		t.Errorf("Clone should have no subscribers, has %d", c.PropertiesChanged.Len())
	}

	c.SetName("other")
	if c.Equal(l) {
		t.Error("Renamed clone should differ")
	}
	if l.Name() != "A" {
		t.Error("Clone mutation leaked into original")
	}
}

func TestEqualNil(t *testing.T) {
	var a *Light
	if !a.Equal(nil) {
		t.Error("nil lights should be equal")
	}
	if New("x").Equal(nil) {
		t.Error("light should not equal nil")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		theta, phi float32
		want       [3]float32
	}{
		{0, 0, [3]float32{0, 0, 1}},
		{90, 0, [3]float32{1, 0, 0}},
		{0, 90, [3]float32{0, 1, 0}},
	}

	for _, tt := range tests {
		d := New("d", WithAngles(tt.theta, tt.phi)).Direction()
		for i := range d {
			if math.Abs(float64(d[i]-tt.want[i])) > 1e-5 {
				t.Errorf("theta=%.0f phi=%.0f: got %v, want %v", tt.theta, tt.phi, d, tt.want)
				break
			}
		}
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	l := New("Rim", WithAngles(90, 25), WithColor(palette.RGB(155, 155, 205)), WithIntensity(3000))
	doc := l.Document()

	r := New("")
	count := 0
	r.PropertiesChanged.Subscribe(func(*Light) { count++ })
	r.ReadDocument(doc)

	if !r.Equal(l) {
		t.Errorf("Round trip mismatch: %+v vs %+v", r.Properties(), l.Properties())
	}
	if count != 1 {
		t.Errorf("ReadDocument should emit once, got %d", count)
	}
}

func TestBackground(t *testing.T) {
	b := NewBackground()
	count := 0
	b.Changed.Subscribe(func(*Background) { count++ })

	sky := palette.RGB(185, 213, 255)
	b.SetTopColor(sky)
	b.SetMiddleColor(sky)
	b.SetBottomColor(sky)
	b.SetIntensity(300)

	if count != 4 {
		t.Errorf("Expected 4 change events, got %d", count)
	}

	other := NewBackground()
	other.ReadDocument(b.Document())
	if other.TopColor() != sky || other.MiddleColor() != sky || other.BottomColor() != sky || other.Intensity() != 300 {
		t.Errorf("Background document round trip failed: %+v", other.Document())
	}

	c := NewBackground()
	c.CopyFrom(b)
	if c.Document() != b.Document() {
		t.Error("CopyFrom should copy every field")
	}
}
