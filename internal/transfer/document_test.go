package transfer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/volscene/internal/palette"
)

func TestDefault(t *testing.T) {
	f := Default()
	if f.Name != "Default" || f.Count() != 2 {
		t.Fatalf("Unexpected default: name=%q count=%d", f.Name, f.Count())
	}

	first, last := f.NodeAt(0), f.NodeAt(1)
	if first.Position() != 0 || first.Opacity() != 0 || first.Deletable() {
		t.Errorf("Unexpected first node: %.0f %.1f %v", first.Position(), first.Opacity(), first.Deletable())
	}
	if last.Position() != 255 || last.Opacity() != 1 || last.Color() != palette.RGB(255, 255, 255) {
		t.Errorf("Unexpected last node: %.0f %.1f %v", last.Position(), last.Opacity(), last.Color())
	}
}

func TestWriteXML(t *testing.T) {
	f := Default()
	f.AddNode(NewNode(100, 0.3, palette.RGB(200, 10, 10), true))

	var buf bytes.Buffer
	if err := f.WriteXML(&buf); err != nil {
		t.Fatalf("WriteXML failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{`<Preset Name="Default"`, "<Nodes>", `Position="100"`, `Deletable="true"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Missing %s in:\n%s", want, out)
		}
	}
	if strings.Index(out, `Position="0"`) > strings.Index(out, `Position="100"`) {
		t.Error("Nodes should be written in position order")
	}
}

func TestReadXMLReplaces(t *testing.T) {
	src := Default()
	src.Name = "Bone"
	src.AddNode(NewNode(180, 0.8, palette.RGB(240, 230, 200), true))
	src.NodeAt(1).SetOpacity(1.2)

	var buf bytes.Buffer
	if err := src.WriteXML(&buf); err != nil {
		t.Fatal(err)
	}

	f := New()
	f.AddNode(NewNode(30, 0.5, palette.RGB(1, 1, 1), true))
	f.AddNode(NewNode(60, 0.5, palette.RGB(1, 1, 1), true))
	f.SetSelectedNodeIndex(0)

	if err := f.ReadXML(&buf); err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}

	if f.Name != "Bone" || f.Count() != 3 {
		t.Fatalf("Expected 3 nodes from Bone, got %q %d", f.Name, f.Count())
	}
	if f.Selected() != 0 {
		t.Error("Selection should be cleared")
	}
	if f.NodeAt(1).Opacity() != 1.2 {
		t.Errorf("Out-of-range opacity should survive, got %.2f", f.NodeAt(1).Opacity())
	}
	if f.NodeAt(1).Color() != palette.RGB(240, 230, 200) {
		t.Errorf("Color lost: %v", f.NodeAt(1).Color())
	}
	if f.NodeAt(0).Deletable() || !f.NodeAt(1).Deletable() {
		t.Error("Deletable flags lost")
	}
	checkRanges(t, f)
}

func TestReadXMLMalformed(t *testing.T) {
	f := Default()
	if err := f.ReadXML(strings.NewReader("<Preset><Nodes>")); err == nil {
		t.Error("Expected error for truncated XML")
	}
	if f.Count() != 2 {
		t.Error("A failed read should leave the function untouched")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()

	// Domain first, so the end nodes sit at its bounds
	src := New()
	src.SetDomain(0, 1023)
	src.AddNode(NewNode(0, 0, palette.RGB(0, 0, 0), false))
	src.AddNode(NewNode(512, 0.4, palette.RGB(20, 120, 220), true))
	src.AddNode(NewNode(1023, 1, palette.RGB(255, 255, 255), false))

	for _, name := range []string{"ct.xml", "ct.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := src.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			f := New()
			if err := f.Load(path); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if f.RangeMax() != 1023 {
				t.Errorf("Domain lost: %f", f.RangeMax())
			}
			if f.Count() != 3 || f.NodeAt(1).Position() != 512 {
				t.Errorf("Nodes lost in %s", name)
			}
			if f.NodeAt(1).Color() != palette.RGB(20, 120, 220) {
				t.Errorf("Color lost in %s: %v", name, f.NodeAt(1).Color())
			}
		})
	}
}
