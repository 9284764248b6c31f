package layout

import (
	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/glyph"
)

// Default engine parameters.
const (
	DefaultTargetHeight = 1000.0
	DefaultSpacing      = 80.0
	DefaultInset        = 0.8
)

// Engine computes placements. The zero value is not usable; start from
// [DefaultEngine].
type Engine struct {
	TargetHeight float64 // canvas height every glyph is normalized to
	Spacing      float64 // gap after every placed unit
	Inset        float64 // syllable height relative to the frame
}

// DefaultEngine returns an engine with the standard parameters.
func DefaultEngine() Engine {
	return Engine{
		TargetHeight: DefaultTargetHeight,
		Spacing:      DefaultSpacing,
		Inset:        DefaultInset,
	}
}

// Validate checks the engine parameters.
func (e Engine) Validate() error {
	if e.TargetHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "target height must be positive")
	}
	if e.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing cannot be negative")
	}
	if e.Inset <= 0 || e.Inset > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "cartouche inset must be in (0, 1]")
	}
	return nil
}

// Layout packs words left to right, followed by the syllables framed in
// a cartouche. Items without an asset are skipped. A frame is drawn only
// when at least one syllable is placed; in that case frame must not be nil.
func (e Engine) Layout(words, syllables []Item, frame *glyph.Cartouche) (*Canvas, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	syllables = resolved(syllables)
	if len(syllables) > 0 && frame == nil {
		return nil, errors.New(errors.ErrCodeTemplateMissing, "cartouche template required for %d syllables", len(syllables))
	}

	c := &Canvas{Height: e.TargetHeight}
	cursor := 0.0

	for _, w := range resolved(words) {
		p := e.placeWord(w, cursor)
		c.Placements = append(c.Placements, p)
		advance := p.Width + e.Spacing
		c.Advances = append(c.Advances, advance)
		cursor += advance
	}

	if len(syllables) > 0 {
		pieces, glyphs, width := e.placeCartouche(syllables, frame, cursor)
		c.Placements = append(c.Placements, pieces...)
		c.Placements = append(c.Placements, glyphs...)
		advance := width + e.Spacing
		c.Advances = append(c.Advances, advance)
		cursor += advance
	}

	if len(c.Advances) > 0 {
		c.Width = cursor - e.Spacing
	}
	return c, nil
}

func (e Engine) placeWord(w Item, x float64) Placement {
	vb := w.Asset.ViewBox
	s := vb.ScaleTo(e.TargetHeight)
	return Placement{
		Kind:    KindWord,
		Key:     w.Key,
		Asset:   w.Asset,
		X:       x,
		ScaleX:  s,
		ScaleY:  s,
		OriginX: vb.X,
		OriginY: vb.Y,
		Width:   vb.Width * s,
		Height:  e.TargetHeight,
	}
}

// placeCartouche lays out the frame starting at x. It returns the frame
// pieces and the syllable glyphs separately, plus the total frame width.
func (e Engine) placeCartouche(syllables []Item, frame *glyph.Cartouche, x float64) (pieces, glyphs []Placement, width float64) {
	vb := frame.ViewBox
	sy := vb.ScaleTo(e.TargetHeight)
	inner := e.TargetHeight * e.Inset

	fx := x
	placeCap := func(kind Kind, part glyph.Part) {
		w := part.Bounds.Dx() * sy
		pieces = append(pieces, Placement{
			Kind:    kind,
			Key:     kind.String(),
			Asset:   part.Asset,
			X:       fx,
			ScaleX:  sy,
			ScaleY:  sy,
			OriginX: part.Bounds.LLx,
			OriginY: vb.Y,
			Width:   w,
			Height:  e.TargetHeight,
		})
		fx += w
	}

	placeCap(KindCartoucheLeft, frame.Left)

	center := frame.Center
	for _, syl := range syllables {
		svb := syl.Asset.ViewBox
		ss := svb.ScaleTo(inner)
		sw := svb.Width * ss
		slot := max(center.Bounds.Dx()*sy, sw)

		pieces = append(pieces, Placement{
			Kind:    KindCartoucheCenter,
			Key:     KindCartoucheCenter.String(),
			Asset:   center.Asset,
			X:       fx,
			ScaleX:  slot / center.Bounds.Dx(),
			ScaleY:  sy,
			OriginX: center.Bounds.LLx,
			OriginY: vb.Y,
			Width:   slot,
			Height:  e.TargetHeight,
		})
		glyphs = append(glyphs, Placement{
			Kind:    KindSyllable,
			Key:     syl.Key,
			Asset:   syl.Asset,
			X:       fx + (slot-sw)/2,
			Y:       (e.TargetHeight - svb.Height*ss) / 2,
			ScaleX:  ss,
			ScaleY:  ss,
			OriginX: svb.X,
			OriginY: svb.Y,
			Width:   sw,
			Height:  inner,
		})
		fx += slot
	}

	placeCap(KindCartoucheRight, frame.Right)
	return pieces, glyphs, fx - x
}

func resolved(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Asset != nil {
			out = append(out, it)
		}
	}
	return out
}
