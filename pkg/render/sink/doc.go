// Package sink writes a laid-out [layout.Canvas] in its output formats.
//
// # SVG Output
//
// [RenderSVG] emits one flat document: a fixed header, a comment naming the
// phrase and the provenance of every placed glyph, and one path element per
// source sub-path. Each placement contributes a single combined transform,
//
//	translate(X - OriginX*ScaleX, Y - OriginY*ScaleY) scale(ScaleX, ±ScaleY)
//
// where the y-scale is negated for paths stored y-up. A path that keeps a
// local transform of its own is wrapped in a group carrying the placement
// transform.
//
//	svg := sink.RenderSVG(canvas,
//	    sink.WithText("jan sewi Amatelasu"),
//	    sink.WithSources(sources),
//	    sink.WithFill("#000000"),
//	)
//
// # JSON Output
//
// [RenderJSON] exports placement positions and scales for external tools.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] convert the SVG with rsvg-convert; see
// [render.ToPDF].
//
// [layout.Canvas]: github.com/matzehuels/kalamapona/pkg/layout.Canvas
// [render.ToPDF]: github.com/matzehuels/kalamapona/pkg/render.ToPDF
package sink
