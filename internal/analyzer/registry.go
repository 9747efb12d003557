package analyzer

import (
	"errors"
	"fmt"
)

var ErrUnknownVariant = errors.New("unknown analyzer variant")

// NewAnalyzer creates an analyzer based on the specified variant
func NewAnalyzer(variant string) (Analyzer, error) {
	switch variant {
	case "luminance", "":
		return NewLuminanceAnalyzer(), nil
	case "gradient", "contrast":
		return NewGradientAnalyzer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
	}
}
