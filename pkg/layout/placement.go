package layout

import "github.com/matzehuels/kalamapona/pkg/glyph"

// Kind identifies what a placement draws.
type Kind int

// Placement kinds.
const (
	KindWord Kind = iota
	KindSyllable
	KindCartoucheLeft
	KindCartoucheCenter
	KindCartoucheRight
)

var kindNames = [...]string{
	KindWord:            "word",
	KindSyllable:        "syllable",
	KindCartoucheLeft:   "cartouche-left",
	KindCartoucheCenter: "cartouche-center",
	KindCartoucheRight:  "cartouche-right",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsFrame reports whether k is a cartouche piece.
func (k Kind) IsFrame() bool {
	return k == KindCartoucheLeft || k == KindCartoucheCenter || k == KindCartoucheRight
}

// Placement is a positioned instance of an asset. The asset's point
// (OriginX, OriginY) lands on canvas point (X, Y); the asset is scaled by
// (ScaleX, ScaleY) around it.
type Placement struct {
	Kind  Kind
	Key   string
	Asset *glyph.Asset

	X, Y             float64
	ScaleX, ScaleY   float64
	OriginX, OriginY float64

	// Width is the horizontal extent on the canvas.
	Width float64
	// Height is the normalized height the vertical scale was derived from.
	Height float64
}

// Uniform reports whether the placement scales both axes alike.
func (p Placement) Uniform() bool { return p.ScaleX == p.ScaleY }

// Item is a resolved glyph waiting to be placed.
type Item struct {
	Key   string
	Asset *glyph.Asset
}

// Canvas is the result of a layout pass.
type Canvas struct {
	Width, Height float64
	Placements    []Placement

	// Advances holds the horizontal advance of every placed unit in order:
	// one per word and one for the whole cartouche. The gap is included.
	Advances []float64
}

// Empty reports whether nothing was placed.
func (c *Canvas) Empty() bool { return len(c.Placements) == 0 }

// Count returns the number of placements of kind k.
func (c *Canvas) Count(k Kind) int {
	n := 0
	for _, p := range c.Placements {
		if p.Kind == k {
			n++
		}
	}
	return n
}
