package sink

import (
	"encoding/json"

	"github.com/matzehuels/kalamapona/pkg/assets"
	"github.com/matzehuels/kalamapona/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	text    string
	sources []assets.Source
}

// WithJSONText records the composed phrase.
func WithJSONText(text string) JSONOption { return func(r *jsonRenderer) { r.text = text } }

// WithJSONSources records glyph provenance.
func WithJSONSources(sources []assets.Source) JSONOption {
	return func(r *jsonRenderer) { r.sources = sources }
}

type jsonOutput struct {
	Text       string          `json:"text"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Placements []jsonPlacement `json:"placements"`
	Sources    []assets.Source `json:"sources"`
}

type jsonPlacement struct {
	Kind   string  `json:"kind"`
	Key    string  `json:"key"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the canvas as a pretty-printed JSON document listing
// every placement in draw order. Height is the normalized height of the
// placement, so width and height describe its box on the canvas.
func RenderJSON(c *layout.Canvas, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Text:       r.text,
		Width:      c.Width,
		Height:     c.Height,
		Placements: make([]jsonPlacement, 0, len(c.Placements)),
		Sources:    r.sources,
	}
	if out.Sources == nil {
		out.Sources = []assets.Source{}
	}
	for _, p := range c.Placements {
		out.Placements = append(out.Placements, jsonPlacement{
			Kind:   p.Kind.String(),
			Key:    p.Key,
			X:      p.X,
			Y:      p.Y,
			ScaleX: p.ScaleX,
			ScaleY: p.ScaleY,
			Width:  p.Width,
			Height: p.Height,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
