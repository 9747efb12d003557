package preset

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for file extensions other than .xml, .yaml and .yml
var ErrUnknownFormat = errors.New("unknown preset format")

// Header holds the fields shared by every preset kind
type Header struct {
	Name string `xml:"Name,attr" yaml:"name"`
}

// Format selects the on-disk encoding of a preset
type Format int

const (
	FormatXML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension used for the format, with the dot
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".xml"
}

// FormatOf picks the format from the file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Encode writes v to w. XML output is indented and starts with the XML declaration.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(v); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Decode reads v from r
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case FormatXML:
		return xml.NewDecoder(r).Decode(v)
	case FormatYAML:
		return yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// WriteFile writes v to path in the format given by its extension
func WriteFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, f, v); err != nil {
		file.Close()
		return fmt.Errorf("failed to write preset %s: %w", path, err)
	}
	return file.Close()
}

// ReadFile reads v from path in the format given by its extension
func ReadFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Decode(file, f, v); err != nil {
		return fmt.Errorf("failed to read preset %s: %w", path, err)
	}
	return nil
}
