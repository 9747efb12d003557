package transfer

import (
	"encoding/xml"
	"io"

	"github.com/ivlev/volscene/internal/palette"
	"github.com/ivlev/volscene/internal/preset"
)

// Kind is the file name prefix used for transfer function presets
const Kind = "transfer"

// NodeDocument is the persisted form of a Node
type NodeDocument struct {
	Position  float32        `xml:"Position,attr" yaml:"position"`
	Opacity   float32        `xml:"Opacity,attr" yaml:"opacity"`
	Deletable bool           `xml:"Deletable,attr" yaml:"deletable"`
	Color     palette.Swatch `xml:"Color" yaml:"color"`
}

// Document is the persisted form of a Function. The histogram is not saved.
type Document struct {
	XMLName       xml.Name `xml:"Preset" yaml:"-"`
	preset.Header `yaml:",inline"`

	RangeMin float32        `xml:"RangeMin,attr" yaml:"range_min"`
	RangeMax float32        `xml:"RangeMax,attr" yaml:"range_max"`
	Nodes    []NodeDocument `xml:"Nodes>Node" yaml:"nodes"`
}

func (f *Function) Document() Document {
	doc := Document{
		Header:   f.Header,
		RangeMin: f.rangeMin,
		RangeMax: f.rangeMax,
		Nodes:    make([]NodeDocument, 0, len(f.order)),
	}
	for _, n := range f.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeDocument{
			Position:  n.position,
			Opacity:   n.opacity,
			Deletable: n.deletable,
			Color:     palette.SwatchOf(n.color),
		})
	}
	return doc
}

// ReadDocument replaces every node with the ones in d and clears the selection
func (f *Function) ReadDocument(d Document) {
	f.SetSelectedNode(0)
	f.Clear()

	f.Header = d.Header
	if d.RangeMax > d.RangeMin {
		f.rangeMin = d.RangeMin
		f.rangeMax = d.RangeMax
		f.span = d.RangeMax - d.RangeMin
	}

	for _, nd := range d.Nodes {
		f.AddNode(NewNode(nd.Position, nd.Opacity, nd.Color.RGBA(), nd.Deletable))
	}
}

func (f *Function) WriteXML(w io.Writer) error {
	return preset.Encode(w, preset.FormatXML, f.Document())
}

func (f *Function) ReadXML(r io.Reader) error {
	var d Document
	if err := preset.Decode(r, preset.FormatXML, &d); err != nil {
		return err
	}
	f.ReadDocument(d)
	return nil
}

// Save writes the function to path; the extension picks XML or YAML
func (f *Function) Save(path string) error {
	return preset.WriteFile(path, f.Document())
}

// Load reads a preset file into the function
func (f *Function) Load(path string) error {
	var d Document
	if err := preset.ReadFile(path, &d); err != nil {
		return err
	}
	f.ReadDocument(d)
	return nil
}

// Default returns a linear ramp from transparent black to opaque white
// between two fixed end nodes.
func Default() *Function {
	f := New()
	f.Name = "Default"
	f.AddNode(NewNode(DefaultRangeMin, 0, palette.RGB(0, 0, 0), false))
	f.AddNode(NewNode(DefaultRangeMax, 1, palette.RGB(255, 255, 255), false))
	return f
}
