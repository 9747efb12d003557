package share

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/volscene/internal/preset"
	"github.com/ivlev/volscene/internal/transfer"
)

func TestPayload(t *testing.T) {
	payload, err := Payload(transfer.Default().Document())
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}
	if !strings.Contains(string(payload), "name: Default") {
		t.Errorf("Unexpected payload:\n%s", payload)
	}

	// The payload decodes back into a preset
	var doc transfer.Document
	if err := preset.Decode(bytes.NewReader(payload), preset.FormatYAML, &doc); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(doc.Nodes) != 2 {
		t.Errorf("Expected 2 nodes, got %d", len(doc.Nodes))
	}
}

func TestPayloadTooLarge(t *testing.T) {
	doc := preset.Header{Name: strings.Repeat("x", MaxPayload)}
	if _, err := Encode(doc, 0); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "share.png")
	if err := WriteFile(path, transfer.Default().Document(), 256); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := Encode(transfer.Default().Document(), 256)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("QR code is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 256 {
		t.Errorf("Expected 256px, got %d", img.Bounds().Dx())
	}
}
