package sink

import (
	"github.com/matzehuels/kalamapona/pkg/layout"
	"github.com/matzehuels/kalamapona/pkg/render"
)

// DefaultPNGScale renders a 1000-unit canvas 250 px tall.
const DefaultPNGScale = 0.25

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG zoom factor.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the canvas as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(c *layout.Canvas, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&r)
	}
	return render.ToPNG(RenderSVG(c, r.svgOpts...), r.scale)
}

// RenderPDF renders the canvas as PDF via SVG conversion.
func RenderPDF(c *layout.Canvas, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(c, opts...))
}
