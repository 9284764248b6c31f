package syllabary

import (
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/glyph"
	"github.com/matzehuels/kalamapona/pkg/svgdoc"
)

const (
	// DefaultPadding is added around each glyph's content box.
	DefaultPadding = 15.0

	// DefaultPrefix starts every syllable file name.
	DefaultPrefix = "sitelen kalama pona - "

	// Style is set on every sliced document.
	Style = "shape-rendering:geometricPrecision; text-rendering:geometricPrecision; " +
		"image-rendering:optimizeQuality; fill-rule:evenodd; clip-rule:evenodd"
)

var translatePattern = regexp.MustCompile(`translate\(\s*([-+\d.eE]+)[,\s]+([-+\d.eE]+)\s*\)`)

// SliceOptions configures [Slice].
type SliceOptions struct {
	OutputDir string      // destination directory, created if missing
	Padding   float64     // padding on each side; negative means DefaultPadding
	Uniform   bool        // give every slice the widest glyph's width
	Prefix    string      // file name prefix; empty means DefaultPrefix
	Logger    *log.Logger // nil means log.Default()
}

func (o SliceOptions) withDefaults() SliceOptions {
	if o.Padding < 0 {
		o.Padding = DefaultPadding
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Sheet is one syllable cut from the master document.
type Sheet struct {
	ID      string
	Content rect.Rect     // content box on the master sheet, unpadded
	ViewBox glyph.ViewBox // viewBox of the sliced document
	Doc     *svgdoc.Node
}

// FileName is the name the sheet is written under.
func (s Sheet) FileName(prefix string) string {
	return prefix + s.ID + ".svg"
}

// SliceReport summarizes a [Slice] run.
type SliceReport struct {
	Sheets       []Sheet
	Paths        []string // written files, in sheet order
	Skipped      []string // group ids without measurable content or with unusable ids
	UniformWidth float64  // 0 unless uniform mode was requested
}

// Slice cuts the master sheet at path into one file per syllable group.
func Slice(path string, opts SliceOptions) (*SliceReport, error) {
	opts = opts.withDefaults()

	root, err := svgdoc.ParseFile(path)
	if err != nil {
		return nil, err
	}

	report := SliceDocument(root, opts)
	if len(report.Sheets) == 0 {
		return report, errors.New(errors.ErrCodeInvalidInput, "%s contains no syllable groups", path)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return report, errors.Wrap(errors.ErrCodeInternal, err, "create %s", opts.OutputDir)
	}
	for _, s := range report.Sheets {
		out := filepath.Join(opts.OutputDir, s.FileName(opts.Prefix))
		if err := svgdoc.WriteFile(out, s.Doc); err != nil {
			return report, err
		}
		opts.Logger.Debug("wrote syllable", "id", s.ID, "width", s.ViewBox.Width, "height", s.ViewBox.Height)
		report.Paths = append(report.Paths, out)
	}
	return report, nil
}

// SliceDocument computes the sliced documents without writing them.
func SliceDocument(root *svgdoc.Node, opts SliceOptions) *SliceReport {
	opts = opts.withDefaults()
	report := &SliceReport{}

	type group struct {
		id      string
		node    *svgdoc.Node
		content rect.Rect
	}
	var groups []group
	maxWidth := 0.0

	for _, child := range root.Elements() {
		id, hasID := child.Get("id")
		transform, hasTransform := child.Get("transform")
		if !child.Is("g") || !hasID || !hasTransform || id == "" {
			continue
		}
		tx, ty, ok := translation(transform)
		if !ok {
			continue
		}
		if err := errors.ValidateSyllableID(id); err != nil {
			opts.Logger.Warn("skipping group", "id", id, "err", errors.UserMessage(err))
			report.Skipped = append(report.Skipped, id)
			continue
		}
		content, ok := groupBounds(child)
		if !ok {
			opts.Logger.Warn("skipping group without content", "id", id)
			report.Skipped = append(report.Skipped, id)
			continue
		}
		content = glyph.TransformRect(matrix.Translate(tx, ty), content)
		maxWidth = math.Max(maxWidth, content.Dx())
		groups = append(groups, group{id: id, node: child, content: content})
	}

	if opts.Uniform {
		report.UniformWidth = maxWidth + 2*opts.Padding
	}

	for _, g := range groups {
		var vb glyph.ViewBox
		if opts.Uniform {
			box := pad(g.content, 0, opts.Padding)
			center := (box.LLx + box.URx) / 2
			vb = glyph.ViewBox{
				X:      center - report.UniformWidth/2,
				Y:      box.LLy,
				Width:  report.UniformWidth,
				Height: box.Dy(),
			}
		} else {
			box := pad(g.content, opts.Padding, opts.Padding)
			vb = glyph.ViewBox{X: box.LLx, Y: box.LLy, Width: box.Dx(), Height: box.Dy()}
		}
		report.Sheets = append(report.Sheets, Sheet{
			ID:      g.id,
			Content: g.content,
			ViewBox: vb,
			Doc:     newDocument(vb, g.node.Clone()),
		})
	}
	return report
}

func newDocument(vb glyph.ViewBox, content *svgdoc.Node) *svgdoc.Node {
	doc := svgdoc.NewElement("svg",
		svgdoc.Attribute("version", "1.1"),
		svgdoc.Attribute("xmlns", svgdoc.NamespaceSVG),
		svgdoc.Attribute("xmlns:sodipodi", svgdoc.NamespaceSodipodi),
		svgdoc.Attribute("xmlns:inkscape", svgdoc.NamespaceInkscape),
		svgdoc.Attribute("width", formatFloat(vb.Width)+"px"),
		svgdoc.Attribute("height", formatFloat(vb.Height)+"px"),
		svgdoc.Attribute("viewBox", vb.String()),
		svgdoc.Attribute("style", Style),
	)
	doc.Append(content)
	return doc
}

// translation extracts the first translate(tx, ty) from a transform list.
func translation(transform string) (tx, ty float64, ok bool) {
	m := translatePattern.FindStringSubmatch(transform)
	if m == nil {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(m[1], 64)
	y, errY := strconv.ParseFloat(m[2], 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}

// groupBounds is the union of path boxes and ellipse or circle extents in
// the group's own coordinates. Nested transforms are not applied.
func groupBounds(g *svgdoc.Node) (rect.Rect, bool) {
	var e glyph.Extent
	g.Walk(func(n *svgdoc.Node, _ []*svgdoc.Node) bool {
		switch {
		case n.Is("path"):
			if b, ok := glyph.PathBounds(n.AttrValue("d")); ok {
				e.AddRect(b)
			}
		case n.Is("ellipse"):
			cx, cy := number(n, "cx"), number(n, "cy")
			rx, ry := number(n, "rx"), number(n, "ry")
			e.AddRect(rect.Rect{LLx: cx - rx, LLy: cy - ry, URx: cx + rx, URy: cy + ry})
		case n.Is("circle"):
			cx, cy, rr := number(n, "cx"), number(n, "cy"), number(n, "r")
			e.AddRect(rect.Rect{LLx: cx - rr, LLy: cy - rr, URx: cx + rr, URy: cy + rr})
		}
		return true
	})
	return e.Rect()
}

// pad grows r by px horizontally and py vertically on each side.
func pad(r rect.Rect, px, py float64) rect.Rect {
	return rect.Rect{LLx: r.LLx - px, LLy: r.LLy - py, URx: r.URx + px, URy: r.URy + py}
}

func number(n *svgdoc.Node, attr string) float64 {
	f, err := strconv.ParseFloat(n.AttrValue(attr), 64)
	if err != nil {
		return 0
	}
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
