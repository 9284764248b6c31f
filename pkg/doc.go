// Package pkg provides the libraries behind kalamapona, a compositor that
// writes Toki Pona phrases as single SVG images.
//
// # Overview
//
// Lowercase words are drawn with pre-rendered sitelen seli kiwen word glyphs.
// A trailing proper name is spelled with sitelen kalama pona syllable glyphs
// inside a cartouche whose center segment stretches once per syllable.
//
// # Architecture
//
// The data flow of one compose run:
//
//	phrase text
//	     ↓
//	[phrase]     tokens, proper name, compound folding, syllables
//	     ↓
//	[assets]     word and syllable files → [glyph] assets (paths + viewBox)
//	     ↓
//	[layout]     placements on a fixed-height canvas
//	     ↓
//	[render/sink] SVG, JSON, PNG, PDF
//
// [pipeline] ties the stages together and is what the CLI calls.
// [syllabary] prepares the syllable directory from a master sheet.
//
// # Supporting packages
//
//   - [config]: TOML configuration and defaults
//   - [svgdoc]: SVG node tree that keeps namespace prefixes intact
//   - [errors]: coded errors; missing glyphs are recoverable, a missing
//     cartouche template is not
//   - [observability]: optional hooks for compose and asset events
//   - [buildinfo]: version information
//
// # Quick Start
//
//	runner := pipeline.NewRunner(config.Default(), nil)
//	res, err := runner.Compose(ctx, "jan sewi Amatelasu")
//	if err != nil {
//	    return err
//	}
//	paths, err := runner.Write(ctx, res, "output", []string{"svg"})
//
// [phrase]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/phrase
// [assets]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/assets
// [glyph]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/glyph
// [layout]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/pipeline
// [syllabary]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/syllabary
// [config]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/config
// [svgdoc]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/svgdoc
// [errors]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/kalamapona/pkg/buildinfo
package pkg
