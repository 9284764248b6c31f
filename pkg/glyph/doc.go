// Package glyph loads pre-rendered vector glyphs and measures them.
//
// A glyph [Asset] is an immutable set of SVG path strings plus the viewBox
// that defines its native coordinate frame. Word glyphs extracted from font
// outlines are stored y-up and carry a leading scale(1,-1) flip; syllable
// glyphs are already y-down. The flip is recorded per path ([Path.YUp]) so the
// emitter can fold it into its own transform instead of assuming one
// orientation for every asset.
//
// # Bounds
//
// [PathBounds] is a small interpreter over the tagged command sequence of a
// path "d" attribute. It tracks end points and control points only, which
// over-approximates curves; that is precise enough for frame layout and for
// slicing syllable sheets. Boxes are geom rect.Rect values grown through an
// [Extent], and transform lists parse to geom matrix.Matrix values.
//
// # Cartouche
//
// [LoadCartouche] reads the three-part frame template (left cap, repeatable
// center, right cap) used to enclose a transliterated name.
package glyph
