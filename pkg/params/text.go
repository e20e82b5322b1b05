package params

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/knobs/pkg/types"
)

// parseFloat32 parses a strict decimal float token. Unlike C's strtof, the
// whole token must be numeric; trailing garbage is a parse error.
func parseFloat32(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrParse, text)
	}
	return float32(f), nil
}

// formatFloat2 renders a float with the fixed 2-decimal-place format used
// for all floating-point parameter text.
func formatFloat2(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

// parseInt parses a strict base-10 signed integer token within bitSize.
func parseInt(text string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrParse, text)
	}
	return n, nil
}

// parseUint parses a strict base-10 unsigned integer token within bitSize.
func parseUint(text string, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrParse, text)
	}
	return n, nil
}
