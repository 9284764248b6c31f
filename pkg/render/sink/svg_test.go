package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/kalamapona/pkg/assets"
	"github.com/matzehuels/kalamapona/pkg/glyph"
	"github.com/matzehuels/kalamapona/pkg/layout"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

func testCanvas() *layout.Canvas {
	word := &glyph.Asset{
		Name:    "jan",
		Paths:   []glyph.Path{{D: "M 100 0 L 800 700 Z", YUp: true}},
		ViewBox: glyph.ViewBox{Y: -1000, Width: 900, Height: 1200},
	}
	syl := &glyph.Asset{
		Name:    "xa",
		Paths:   []glyph.Path{{D: "M 0 0 H 100", Transform: "translate(10,20)"}},
		ViewBox: glyph.ViewBox{X: -15, Y: -15, Width: 130, Height: 230},
	}
	return &layout.Canvas{
		Width:  1234.4,
		Height: 1000,
		Placements: []layout.Placement{
			{Kind: layout.KindWord, Key: "jan", Asset: word, ScaleX: 0.8333, ScaleY: 0.8333, OriginY: -1000},
			{Kind: layout.KindSyllable, Key: "xa", Asset: syl, X: 900, Y: 100, ScaleX: 2, ScaleY: 2, OriginX: -15, OriginY: -15},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	sources := []assets.Source{
		{Kind: assets.SourceWord, Key: "jan", URL: assets.WordURL("jan", nil)},
		{Kind: assets.SourceSyllable, Key: "xa", URL: assets.SyllableURL("xa")},
	}
	got := string(RenderSVG(testCanvas(), WithText("jan A"), WithSources(sources)))

	want := `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!--
Representation of "jan A" in sitelen kalama pona
Generated by kalamapona

Sources:
  jan: https://commons.wikimedia.org/wiki/File:Sitelen_seli_kiwen_-_jan.svg
  xa: https://commons.wikimedia.org/wiki/File:Sitelen_kalama_pona_-_xa.svg
-->
<svg version="1.1" width="1234" height="1000"
     viewBox="0 0 1234 1000"
     xmlns="http://www.w3.org/2000/svg">
  <path d="M 100 0 L 800 700 Z" transform="translate(0.00,833.30) scale(0.8333,-0.8333)" fill="#000000" />
  <g transform="translate(930.00,130.00) scale(2.0000,2.0000)"><path d="M 0 0 H 100" transform="translate(10,20)" fill="#000000" /></g>
</svg>
`
	if got != want {
		t.Errorf("RenderSVG() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSVGEmptyCanvas(t *testing.T) {
	got := string(RenderSVG(&layout.Canvas{Height: 1000}, WithText("")))
	if !strings.Contains(got, `width="0" height="1000"`) {
		t.Errorf("empty canvas header wrong:\n%s", got)
	}
	if strings.Contains(got, "<path") {
		t.Error("empty canvas must not contain paths")
	}
	if _, err := svgdoc.Parse(strings.NewReader(got)); err != nil {
		t.Errorf("empty canvas is not well-formed: %v", err)
	}
}

func TestRenderSVGIsWellFormed(t *testing.T) {
	c := testCanvas()
	out := RenderSVG(c, WithText(`a "quoted" -- <phrase>`), WithFill(`#1&2`))
	root, err := svgdoc.Parse(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	paths := root.FindAll("path")
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	if got := paths[0].AttrValue("fill"); got != "#1&2" {
		t.Errorf("fill = %q", got)
	}
}

func TestRenderSVGFill(t *testing.T) {
	got := string(RenderSVG(testCanvas(), WithFill("#ff0000")))
	if strings.Contains(got, DefaultFill) || strings.Count(got, `fill="#ff0000"`) != 2 {
		t.Errorf("fill not applied:\n%s", got)
	}
	if got := string(RenderSVG(testCanvas(), WithFill(""))); !strings.Contains(got, `fill="#000000"`) {
		t.Error("empty fill should fall back to the default")
	}
}

func TestDefuseComment(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a--b", "a- -b"},
		{"a---b", "a- - -b"},
		{"-->", "- ->"},
	}
	for _, tt := range tests {
		got := defuseComment(tt.in)
		if got != tt.want {
			t.Errorf("defuseComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if strings.Contains(got, "--") {
			t.Errorf("defuseComment(%q) still contains --", tt.in)
		}
	}
}
