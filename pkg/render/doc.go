// Package render converts composed SVG documents into other formats.
//
// The [sink] subpackage writes a laid-out canvas as SVG or JSON. [ToPDF] and
// [ToPNG] rasterize or print that SVG using the external rsvg-convert tool
// (from librsvg):
//
//	svg := sink.RenderSVG(canvas, sink.WithText(text))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [sink]: github.com/matzehuels/kalamapona/pkg/render/sink
package render
