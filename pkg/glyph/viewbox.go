package glyph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/kalamapona/pkg/errors"
)

// DefaultViewBox is assumed for documents without a viewBox attribute.
var DefaultViewBox = ViewBox{Width: 1000, Height: 1000}

// ViewBox is an SVG viewBox: the native coordinate frame of an asset.
type ViewBox struct {
	X, Y          float64
	Width, Height float64
}

// ParseViewBox parses "min-x min-y width height", separated by whitespace
// and/or commas.
func ParseViewBox(s string) (ViewBox, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return ViewBox{}, errors.New(errors.ErrCodeInvalidAsset, "viewBox %q: want 4 numbers, got %d", s, len(fields))
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, errors.Wrap(errors.ErrCodeInvalidAsset, err, "viewBox %q", s)
		}
		v[i] = n
	}
	return ViewBox{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// String formats the viewBox as an attribute value.
func (v ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Width), formatFloat(v.Height))
}

// ScaleTo returns the uniform factor that maps the native height onto target.
// Degenerate heights scale by 1.
func (v ViewBox) ScaleTo(target float64) float64 {
	if v.Height <= 0 {
		return 1
	}
	return target / v.Height
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
