package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/kalamapona/pkg/assets"
	"github.com/matzehuels/kalamapona/pkg/layout"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

// DefaultFill is the fill colour of every emitted path.
const DefaultFill = "#000000"

// Generator is named in the comment block of every document.
const Generator = "kalamapona"

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	text    string
	fill    string
	sources []assets.Source
}

// WithText sets the phrase named in the comment block.
func WithText(text string) SVGOption { return func(r *svgRenderer) { r.text = text } }

// WithFill sets the fill colour of every path.
func WithFill(fill string) SVGOption { return func(r *svgRenderer) { r.fill = fill } }

// WithSources lists glyph provenance in the comment block.
func WithSources(sources []assets.Source) SVGOption {
	return func(r *svgRenderer) { r.sources = sources }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{fill: DefaultFill}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fill == "" {
		r.fill = DefaultFill
	}
	return r
}

// RenderSVG serializes all placements in canvas order. It does not modify c.
func RenderSVG(c *layout.Canvas, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	buf.WriteString("<!--\n" + commentBody(r.text, r.sources) + "\n-->\n")
	fmt.Fprintf(&buf, `<svg version="1.1" width="%.0f" height="%.0f"`+"\n", c.Width, c.Height)
	fmt.Fprintf(&buf, `     viewBox="0 0 %.0f %.0f"`+"\n", c.Width, c.Height)
	buf.WriteString(`     xmlns="http://www.w3.org/2000/svg">` + "\n")

	fill := svgdoc.EscapeAttr(r.fill)
	for _, p := range c.Placements {
		renderPlacement(&buf, p, fill)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderPlacement(buf *bytes.Buffer, p layout.Placement, fill string) {
	if p.Asset == nil {
		return
	}
	tx := p.X - p.OriginX*p.ScaleX
	ty := p.Y - p.OriginY*p.ScaleY

	for _, path := range p.Asset.Paths {
		sy := p.ScaleY
		if path.YUp {
			sy = -sy
		}
		outer := fmt.Sprintf("translate(%.2f,%.2f) scale(%.4f,%.4f)", tx, ty, p.ScaleX, sy)
		d := svgdoc.EscapeAttr(path.D)

		if local := strings.TrimSpace(path.Transform); local != "" {
			fmt.Fprintf(buf, `  <g transform="%s"><path d="%s" transform="%s" fill="%s" /></g>`+"\n",
				outer, d, svgdoc.EscapeAttr(local), fill)
			continue
		}
		fmt.Fprintf(buf, `  <path d="%s" transform="%s" fill="%s" />`+"\n", d, outer, fill)
	}
}

func commentBody(text string, sources []assets.Source) string {
	lines := []string{
		`Representation of "` + text + `" in sitelen kalama pona`,
		"Generated by " + Generator,
		"",
		"Sources:",
	}
	for _, s := range sources {
		lines = append(lines, fmt.Sprintf("  %s: %s", s.Key, s.URL))
	}
	return defuseComment(strings.Join(lines, "\n"))
}

// defuseComment breaks up "--", which may not appear inside an XML comment.
func defuseComment(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return s
}
