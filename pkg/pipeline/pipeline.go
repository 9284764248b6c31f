// Package pipeline provides the compose pipeline for kalamapona.
//
// This package ties phrase analysis, glyph resolution, layout and rendering
// together so that the CLI and library users share one implementation.
//
// # Architecture
//
// A compose run has four stages:
//
//  1. Analyze: split the phrase, fold compounds, extract syllables
//  2. Resolve: load the cartouche template (when a name is present) and
//     every word and syllable glyph
//  3. Layout: compute placements on the fixed-height canvas
//  4. Render: serialize the canvas as SVG, JSON, PNG or PDF
//
// Only a missing or broken cartouche template stops a run. Glyphs that
// cannot be found are logged, reported on the [Result] and left out.
//
// # Usage
//
//	runner := pipeline.NewRunner(config.Default(), logger)
//	result, err := runner.Compose(ctx, "jan sewi Amatelasu")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := runner.Write(ctx, result, "output", []string{"svg"})
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/kalamapona/pkg/assets"
	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/layout"
	"github.com/matzehuels/kalamapona/pkg/phrase"
)

// =============================================================================
// Formats
// =============================================================================

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// DefaultFormats is used when no format is requested.
var DefaultFormats = []string{FormatSVG}

// OutputPrefix starts every output file name.
const OutputPrefix = "sitelen kalama pona - "

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// OutputName is the file name for text rendered in format, e.g.
// "sitelen kalama pona - jan sewi.svg".
func OutputName(text, format string) string {
	return fmt.Sprintf("%s%s.%s", OutputPrefix, text, format)
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a compose run.
type Result struct {
	// Text is the phrase as given.
	Text string

	// Analysis is the parsed phrase with compounds folded and syllables
	// extracted.
	Analysis Analysis

	// Missing lists the glyphs that could not be resolved.
	Missing []Missing

	// Canvas holds the placements.
	Canvas *layout.Canvas

	// Sources lists provenance for every placed word and syllable glyph.
	Sources []assets.Source

	// Stats contains timing and size information.
	Stats Stats
}

// Missing is a glyph left out of the canvas.
type Missing struct {
	Kind string // assets.SourceWord or assets.SourceSyllable
	Key  string
	Err  error
}

func (m Missing) String() string { return m.Kind + ":" + m.Key }

// Stats contains compose statistics.
type Stats struct {
	Words       int
	Syllables   int
	Placements  int
	Missing     int
	ParseTime   time.Duration
	ResolveTime time.Duration
	LayoutTime  time.Duration
}

// MissingKeys returns the keys of all missing glyphs of the given kind.
func (r *Result) MissingKeys(kind string) []string {
	var out []string
	for _, m := range r.Missing {
		if m.Kind == kind {
			out = append(out, m.Key)
		}
	}
	return out
}

// Complete reports whether every glyph was placed.
func (r *Result) Complete() bool { return len(r.Missing) == 0 }

// =============================================================================
// Analysis
// =============================================================================

// Analysis is the symbolic breakdown of a phrase.
type Analysis struct {
	Phrase    phrase.Phrase
	Words     []string // word tokens with compounds folded
	Syllables []string // syllables of the name
	Keys      []string // asset keys of the syllables
}

// Analyze parses text, folds compounds and extracts syllables.
func Analyze(text string, compounds phrase.CompoundSet, alphabet phrase.Alphabet) Analysis {
	p := phrase.Parse(text)
	syllables := alphabet.Syllables(p.Name)
	return Analysis{
		Phrase:    p,
		Words:     phrase.MatchCompounds(p.Words, compounds),
		Syllables: syllables,
		Keys:      alphabet.AssetKeys(syllables),
	}
}

// HasName reports whether the phrase has a syllable run needing a frame.
func (a Analysis) HasName() bool { return len(a.Syllables) > 0 }

// String summarizes the analysis on one line.
func (a Analysis) String() string {
	return fmt.Sprintf("words=[%s] syllables=[%s]", strings.Join(a.Words, " "), strings.Join(a.Syllables, " "))
}
