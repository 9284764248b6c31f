package glyph

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"github.com/matzehuels/kalamapona/pkg/errors"
)

// TransformRect maps the four corners of r through m and returns their
// bounding box.
func TransformRect(m matrix.Matrix, r rect.Rect) rect.Rect {
	var e Extent
	for _, p := range [4][2]float64{{r.LLx, r.LLy}, {r.URx, r.LLy}, {r.LLx, r.URy}, {r.URx, r.URy}} {
		e.AddPoint(m.Apply(p[0], p[1]))
	}
	out, _ := e.Rect()
	return out
}

var transformFunc = regexp.MustCompile(`([a-zA-Z]+)\s*\(([^)]*)\)`)

// ParseTransform parses an SVG transform list. Functions compose left to
// right, so the leftmost is applied last. The empty string is the identity.
func ParseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	rest := s
	for _, match := range transformFunc.FindAllStringSubmatchIndex(s, -1) {
		name := s[match[2]:match[3]]
		args, err := parseNumbers(s[match[4]:match[5]])
		if err != nil {
			return matrix.Identity, errors.Wrap(errors.ErrCodeInvalidAsset, err, "transform %q", s)
		}
		t, err := transformOf(name, args)
		if err != nil {
			return matrix.Identity, errors.Wrap(errors.ErrCodeInvalidAsset, err, "transform %q", s)
		}
		m = t.Mul(m)
		rest = strings.Replace(rest, s[match[0]:match[1]], "", 1)
	}
	if strings.Trim(rest, " \t\r\n,") != "" {
		return matrix.Identity, errors.New(errors.ErrCodeInvalidAsset, "transform %q: unexpected %q", s, strings.TrimSpace(rest))
	}
	return m, nil
}

// transformOf builds one transform function. Matrices apply left to right
// under Mul, so rotation about a point is translate(-c), rotate, translate(c).
func transformOf(name string, a []float64) (matrix.Matrix, error) {
	switch {
	case name == "matrix" && len(a) == 6:
		return matrix.Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}, nil
	case name == "translate" && len(a) == 1:
		return matrix.Translate(a[0], 0), nil
	case name == "translate" && len(a) == 2:
		return matrix.Translate(a[0], a[1]), nil
	case name == "scale" && len(a) == 1:
		return matrix.Scale(a[0], a[0]), nil
	case name == "scale" && len(a) == 2:
		return matrix.Scale(a[0], a[1]), nil
	case name == "rotate" && (len(a) == 1 || len(a) == 3):
		sin, cos := math.Sincos(a[0] * math.Pi / 180)
		r := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
		if len(a) == 3 {
			r = matrix.Translate(-a[1], -a[2]).Mul(r).Mul(matrix.Translate(a[1], a[2]))
		}
		return r, nil
	case name == "skewX" && len(a) == 1:
		return matrix.Matrix{1, 0, math.Tan(a[0] * math.Pi / 180), 1, 0, 0}, nil
	case name == "skewY" && len(a) == 1:
		return matrix.Matrix{1, math.Tan(a[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	}
	return matrix.Identity, errors.New(errors.ErrCodeInvalidAsset, "unsupported %s with %d arguments", name, len(a))
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Bounds returns the approximate bounding box of the path in the coordinate
// system outside its transform list. ok is false when the geometry has no
// usable coordinates or the transform cannot be parsed.
func (p Path) Bounds() (rect.Rect, bool) {
	r, ok := PathBounds(p.D)
	if !ok {
		return rect.Rect{}, false
	}
	m, err := ParseTransform(p.Transform)
	if err != nil {
		return rect.Rect{}, false
	}
	if p.YUp {
		m = m.Mul(matrix.Scale(1, -1))
	}
	return TransformRect(m, r), true
}

// Bounds returns the union of the bounds of all measurable paths.
func Bounds(paths []Path) (rect.Rect, bool) {
	var e Extent
	for _, p := range paths {
		if b, ok := p.Bounds(); ok {
			e.AddRect(b)
		}
	}
	return e.Rect()
}
