package share

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ivlev/volscene/internal/preset"
	"github.com/skip2/go-qrcode"
)

// MaxPayload is the byte capacity of the largest QR symbol at medium recovery
const MaxPayload = 2331

// DefaultSize is the PNG edge in pixels
const DefaultSize = 512

var ErrPayloadTooLarge = errors.New("preset too large for a QR code")

// Payload renders a preset document as compact YAML, the text a QR code carries
func Payload(doc any) ([]byte, error) {
	var buf bytes.Buffer
	if err := preset.Encode(&buf, preset.FormatYAML, doc); err != nil {
		return nil, err
	}
	if buf.Len() > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, buf.Len(), MaxPayload)
	}
	return buf.Bytes(), nil
}

// Encode returns a PNG QR code holding the preset document
func Encode(doc any, size int) ([]byte, error) {
	payload, err := Payload(doc)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(string(payload), qrcode.Medium, size)
}

// WriteFile writes the QR code PNG for doc to path
func WriteFile(path string, doc any, size int) error {
	png, err := Encode(doc, size)
	if err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		return fmt.Errorf("failed to write QR code %s: %w", path, err)
	}
	return nil
}
