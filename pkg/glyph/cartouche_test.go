package glyph

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

func TestLoadCartouche(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cartouche.svg", cartoucheSVG)
	c, err := LoadCartouche(path)
	if err != nil {
		t.Fatalf("LoadCartouche() error: %v", err)
	}

	if c.Source != path {
		t.Errorf("Source = %q, want %q", c.Source, path)
	}
	if c.ViewBox != (ViewBox{0, 0, 300, 100}) {
		t.Errorf("ViewBox = %+v", c.ViewBox)
	}

	tests := []struct {
		name       string
		part       Part
		minX, maxX float64
	}{
		{"left", c.Left, 0, 20},
		{"center", c.Center, 20, 120},
		{"right", c.Right, 120, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.part.Bounds.LLx != tt.minX || tt.part.Bounds.URx != tt.maxX {
				t.Errorf("bounds x = [%v, %v], want [%v, %v]", tt.part.Bounds.LLx, tt.part.Bounds.URx, tt.minX, tt.maxX)
			}
			if tt.part.Asset == nil || tt.part.Asset.ViewBox != c.ViewBox {
				t.Errorf("part asset does not share template viewBox: %+v", tt.part.Asset)
			}
		})
	}

	if got := c.Center.Asset.Paths[0].Transform; got != "translate(20,0)" {
		t.Errorf("center transform = %q", got)
	}
}

func TestCartoucheAncestorTransforms(t *testing.T) {
	doc := `<svg xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" viewBox="0 0 100 100">
  <g transform="translate(100,0)">
    <g inkscape:label="left"><path d="M 0 0 H 10" transform="scale(1,-1)"/></g>
    <g inkscape:label="center"><path d="M 10 0 H 20"/></g>
    <g inkscape:label="right"><path d="M 20 0 H 30"/></g>
  </g>
</svg>`
	root, err := svgdoc.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	c, err := CartoucheFromDocument(root)
	if err != nil {
		t.Fatalf("CartoucheFromDocument() error: %v", err)
	}
	if c.Left.Bounds.LLx != 100 || c.Right.Bounds.URx != 130 {
		t.Errorf("bounds ignore ancestor transform: left %+v right %+v", c.Left.Bounds, c.Right.Bounds)
	}
	left := c.Left.Asset.Paths[0]
	if left.YUp || left.Transform != "translate(100,0) scale(1,-1)" {
		t.Errorf("left path = %+v", left)
	}
}

func TestLoadCartoucheMissing(t *testing.T) {
	_, err := LoadCartouche(filepath.Join(t.TempDir(), "cartouche.svg"))
	if !errors.Is(err, errors.ErrCodeTemplateMissing) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeTemplateMissing)
	}
}

func TestLoadCartoucheIncomplete(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no right", `<svg><g id="left"><path d="M0 0H1"/></g><g id="center"><path d="M0 0H1"/></g></svg>`},
		{"center without paths", `<svg><g id="left"><path d="M0 0H1"/></g><g id="center"/><g id="right"><path d="M0 0H1"/></g></svg>`},
		{"unmeasurable center", `<svg><g id="left"><path d="M0 0H1"/></g><g id="center"><path d="junk"/></g><g id="right"><path d="M0 0H1"/></g></svg>`},
		{"zero width part", `<svg><g id="left"><path d="M0 0V1"/></g><g id="center"><path d="M0 0H1"/></g><g id="right"><path d="M0 0H1"/></g></svg>`},
		{"bad viewBox", `<svg viewBox="1 2"><g id="left"><path d="M0 0H1"/></g></svg>`},
		{"not xml", `<svg`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "cartouche.svg", tt.doc)
			_, err := LoadCartouche(path)
			if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
				t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidTemplate)
			}
			if !errors.IsFatal(err) {
				t.Error("template errors must be fatal")
			}
		})
	}
}
