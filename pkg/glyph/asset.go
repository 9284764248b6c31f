package glyph

import (
	"io"
	"regexp"
	"strings"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

// Path is one sub-path of an asset.
type Path struct {
	D         string // path geometry
	Transform string // local transform list, ancestors first; may be empty
	YUp       bool   // geometry is y-up; a leading scale(1,-1) was stripped
}

// Asset is a loaded glyph. Assets are never mutated after loading and may be
// shared by several placements.
type Asset struct {
	Name    string
	Paths   []Path
	ViewBox ViewBox
}

// YUp reports whether any path of the asset is stored y-up.
func (a *Asset) YUp() bool {
	for _, p := range a.Paths {
		if p.YUp {
			return true
		}
	}
	return false
}

// Load reads the asset stored at path.
func Load(name, path string) (*Asset, error) {
	root, err := svgdoc.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return FromDocument(name, root)
}

// Parse reads an asset from r.
func Parse(name string, r io.Reader) (*Asset, error) {
	root, err := svgdoc.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(name, root)
}

// FromDocument builds an asset from a parsed SVG root. Every path element
// with geometry is collected in document order; the transforms of enclosing
// groups are prepended to its own.
func FromDocument(name string, root *svgdoc.Node) (*Asset, error) {
	vb := DefaultViewBox
	if s, ok := root.Get("viewBox"); ok {
		var err error
		if vb, err = ParseViewBox(s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidAsset, err, "asset %q", name)
		}
	}

	paths := CollectPaths(root)
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidAsset, "asset %q has no paths", name)
	}
	return &Asset{Name: name, Paths: paths, ViewBox: vb}, nil
}

// CollectPaths returns the paths below n, outermost group transforms first.
// Transforms on n itself are included when n is not the document root.
func CollectPaths(n *svgdoc.Node) []Path {
	var paths []Path
	n.Walk(func(node *svgdoc.Node, ancestors []*svgdoc.Node) bool {
		if !node.Is("path") {
			return true
		}
		d := strings.TrimSpace(node.AttrValue("d"))
		if d == "" {
			return false
		}
		transform := joinTransforms(transformChain(ancestors), node.AttrValue("transform"))
		paths = append(paths, newPath(d, transform))
		return false
	})
	return paths
}

// transformChain joins the transforms of nested elements, outermost first.
// The root svg element never carries a meaningful transform.
func transformChain(nodes []*svgdoc.Node) string {
	var chain []string
	for _, n := range nodes {
		if n.Is("svg") {
			continue
		}
		if t := strings.TrimSpace(n.AttrValue("transform")); t != "" {
			chain = append(chain, t)
		}
	}
	return strings.Join(chain, " ")
}

func joinTransforms(outer, inner string) string {
	return strings.TrimSpace(strings.TrimSpace(outer) + " " + strings.TrimSpace(inner))
}

// within returns p as seen from inside an additional outer transform list.
func (p Path) within(outer string) Path {
	if strings.TrimSpace(outer) == "" {
		return p
	}
	inner := p.Transform
	if p.YUp {
		inner = joinTransforms("scale(1,-1)", inner)
	}
	return newPath(p.D, joinTransforms(outer, inner))
}

var leadingFlip = regexp.MustCompile(`^\s*scale\(\s*1\s*[,\s]\s*-1\s*\)\s*`)

func newPath(d, transform string) Path {
	if loc := leadingFlip.FindStringIndex(transform); loc != nil {
		return Path{D: d, Transform: strings.TrimSpace(transform[loc[1]:]), YUp: true}
	}
	return Path{D: d, Transform: transform}
}
