package glyph

import (
	"seehuhn.de/go/geom/rect"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

// Cartouche part labels.
const (
	PartLeft   = "left"
	PartCenter = "center"
	PartRight  = "right"
)

// Part is one piece of a cartouche frame.
type Part struct {
	Asset  *Asset    // paths of the piece, sharing the template viewBox
	Bounds rect.Rect // approximate extent in template coordinates
}

// Cartouche is a three-part frame template: a left cap, a center segment
// tiled once per syllable, and a right cap.
type Cartouche struct {
	Source  string
	ViewBox ViewBox
	Left    Part
	Center  Part
	Right   Part
}

// LoadCartouche reads the frame template at path. Any failure is fatal for
// a run that needs a frame: a missing file is ErrCodeTemplateMissing, a
// file without all three measurable parts is ErrCodeInvalidTemplate.
func LoadCartouche(path string) (*Cartouche, error) {
	root, err := svgdoc.ParseFile(path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return nil, errors.Wrap(errors.ErrCodeTemplateMissing, err, "cartouche template not found")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "cartouche template %s", path)
	}
	c, err := CartoucheFromDocument(root)
	if err != nil {
		return nil, err
	}
	c.Source = path
	return c, nil
}

// CartoucheFromDocument extracts the frame parts from a parsed template.
// Parts are groups labeled "left", "center" and "right" via inkscape:label,
// falling back to id.
func CartoucheFromDocument(root *svgdoc.Node) (*Cartouche, error) {
	vb := DefaultViewBox
	if s, ok := root.Get("viewBox"); ok {
		var err error
		if vb, err = ParseViewBox(s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "cartouche viewBox")
		}
	}

	c := &Cartouche{ViewBox: vb}
	for _, p := range []struct {
		label string
		dst   *Part
	}{
		{PartLeft, &c.Left},
		{PartCenter, &c.Center},
		{PartRight, &c.Right},
	} {
		part, err := findPart(root, p.label, vb)
		if err != nil {
			return nil, err
		}
		*p.dst = part
	}
	return c, nil
}

func findPart(root *svgdoc.Node, label string, vb ViewBox) (Part, error) {
	g, ancestors := findGroup(root, "inkscape:label", label)
	if g == nil {
		g, ancestors = findGroup(root, "id", label)
	}
	if g == nil {
		return Part{}, errors.New(errors.ErrCodeInvalidTemplate, "cartouche template has no %q group", label)
	}

	outer := transformChain(ancestors)
	paths := CollectPaths(g)
	for i, p := range paths {
		paths[i] = p.within(outer)
	}
	if len(paths) == 0 {
		return Part{}, errors.New(errors.ErrCodeInvalidTemplate, "cartouche %q group has no paths", label)
	}
	r, ok := Bounds(paths)
	if !ok || r.Dx() <= 0 {
		return Part{}, errors.New(errors.ErrCodeInvalidTemplate, "cartouche %q group has no measurable extent", label)
	}
	return Part{
		Asset:  &Asset{Name: "cartouche-" + label, Paths: paths, ViewBox: vb},
		Bounds: r,
	}, nil
}

// findGroup returns the first group whose attribute attr equals value,
// together with its element ancestors.
func findGroup(root *svgdoc.Node, attr, value string) (*svgdoc.Node, []*svgdoc.Node) {
	var found *svgdoc.Node
	var chain []*svgdoc.Node
	root.Walk(func(n *svgdoc.Node, ancestors []*svgdoc.Node) bool {
		if found != nil {
			return false
		}
		if n.Is("g") && n.AttrValue(attr) == value {
			found, chain = n, ancestors
			return false
		}
		return true
	})
	return found, chain
}
