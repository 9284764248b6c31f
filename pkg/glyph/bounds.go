package glyph

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/rect"
)

// Extent accumulates an axis-aligned bounding box. The zero value is empty,
// unlike the zero rect.Rect which covers the origin.
type Extent struct {
	box   rect.Rect
	valid bool
}

// AddPoint grows the extent to contain (x, y). Non-finite coordinates are
// ignored.
func (e *Extent) AddPoint(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	switch {
	case !e.valid:
		e.box = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
		e.valid = true
	case e.box.IsZero():
		// ExtendVec would treat the origin box as empty.
		e.box = rect.Rect{LLx: min(x, 0), LLy: min(y, 0), URx: max(x, 0), URy: max(y, 0)}
	default:
		e.box.Add(x, y)
	}
}

// AddRect grows the extent to contain r.
func (e *Extent) AddRect(r rect.Rect) {
	e.AddPoint(r.LLx, r.LLy)
	e.AddPoint(r.URx, r.URy)
}

// Rect returns the accumulated box; ok is false when no point was added.
func (e Extent) Rect() (rect.Rect, bool) {
	return e.box, e.valid
}

// Op is a path command tag.
type Op byte

// Path commands, upper case. Relative variants are flagged on the Command.
const (
	OpMove      Op = 'M'
	OpLine      Op = 'L'
	OpHoriz     Op = 'H'
	OpVert      Op = 'V'
	OpCubic     Op = 'C'
	OpSmoothCub Op = 'S'
	OpQuad      Op = 'Q'
	OpSmoothQ   Op = 'T'
	OpArc       Op = 'A'
	OpClose     Op = 'Z'
)

// arity is the number of arguments each command consumes per segment.
var arity = map[Op]int{
	OpMove: 2, OpLine: 2, OpHoriz: 1, OpVert: 1,
	OpCubic: 6, OpSmoothCub: 4, OpQuad: 4, OpSmoothQ: 2,
	OpArc: 7, OpClose: 0,
}

// Command is one segment of a path.
type Command struct {
	Op       Op
	Relative bool
	Args     []float64
}

// ParsePath splits path data into commands. Implicit repetitions become
// separate commands, coordinates after a moveto become linetos, and tokens
// that cannot be parsed are skipped, as are incomplete trailing segments.
func ParsePath(d string) []Command {
	var cmds []Command
	var op Op
	rel := false
	var args []float64

	flush := func() {
		n, ok := arity[op]
		if !ok || n == 0 {
			args = args[:0]
			return
		}
		for len(args) >= n {
			cmds = append(cmds, Command{Op: op, Relative: rel, Args: append([]float64(nil), args[:n]...)})
			args = args[n:]
			if op == OpMove {
				op = OpLine
			}
		}
	}

	for _, tok := range tokenizePath(d) {
		if tok.cmd != 0 {
			flush()
			args = args[:0]
			c := tok.cmd
			rel = c >= 'a' && c <= 'z'
			if rel {
				c -= 'a' - 'A'
			}
			op = Op(c)
			if op == OpClose {
				cmds = append(cmds, Command{Op: OpClose, Relative: rel})
			}
			continue
		}
		if _, ok := arity[op]; !ok {
			continue
		}
		args = append(args, tok.num)
		if len(args) == arity[op] {
			flush()
		}
	}
	flush()
	return cmds
}

type pathToken struct {
	cmd byte
	num float64
}

// tokenizePath splits path data into command letters and numbers. Numbers
// may be separated by whitespace, commas, a sign, or a second decimal point
// ("0.5.5" is two numbers). The two flag arguments of an arc are single
// digits, so "0 1120 0" reads as 0, 1, 1, 20, 0. Unknown letters and
// malformed numbers are dropped.
func tokenizePath(d string) []pathToken {
	var toks []pathToken
	var cmd byte
	argc := 0
	for i := 0; i < len(d); {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',':
			i++
		case isCommand(c):
			toks = append(toks, pathToken{cmd: c})
			cmd, argc = c|0x20, 0
			i++
		case cmd == 'a' && isArcFlag(argc) && (c == '0' || c == '1'):
			toks = append(toks, pathToken{num: float64(c - '0')})
			argc++
			i++
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			j := scanNumber(d, i)
			if j == i {
				i++
				continue
			}
			if f, err := strconv.ParseFloat(d[i:j], 64); err == nil {
				toks = append(toks, pathToken{num: f})
				argc++
			}
			i = j
		default:
			i++
		}
	}
	return toks
}

// isArcFlag reports whether the argc-th argument of an arc run is the
// large-arc or sweep flag.
func isArcFlag(argc int) bool {
	n := argc % arity[OpArc]
	return n == 3 || n == 4
}

func isCommand(c byte) bool {
	switch c | 0x20 {
	case 'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a', 'z':
		return true
	}
	return false
}

// scanNumber returns the end of the number starting at i.
func scanNumber(d string, i int) int {
	j := i
	if j < len(d) && (d[j] == '-' || d[j] == '+') {
		j++
	}
	digits, dot := false, false
mantissa:
	for ; j < len(d); j++ {
		switch c := d[j]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		default:
			break mantissa
		}
	}
	if !digits {
		return i
	}
	if j < len(d) && (d[j] == 'e' || d[j] == 'E') {
		k := j + 1
		if k < len(d) && (d[k] == '-' || d[k] == '+') {
			k++
		}
		start := k
		for k < len(d) && d[k] >= '0' && d[k] <= '9' {
			k++
		}
		if k > start {
			j = k
		}
	}
	return j
}

// PathBounds returns the approximate bounding box of path data: the box of
// all end points and control points. ok is false when the path contains no
// usable coordinates.
func PathBounds(d string) (rect.Rect, bool) {
	var e Extent
	var cx, cy, sx, sy float64
	for _, c := range ParsePath(d) {
		a := c.Args
		var ox, oy float64
		if c.Relative {
			ox, oy = cx, cy
		}
		switch c.Op {
		case OpMove:
			cx, cy = a[0]+ox, a[1]+oy
			sx, sy = cx, cy
			e.AddPoint(cx, cy)
		case OpLine, OpSmoothQ:
			cx, cy = a[0]+ox, a[1]+oy
			e.AddPoint(cx, cy)
		case OpHoriz:
			cx = a[0] + ox
			e.AddPoint(cx, cy)
		case OpVert:
			cy = a[0] + oy
			e.AddPoint(cx, cy)
		case OpCubic:
			e.AddPoint(a[0]+ox, a[1]+oy)
			e.AddPoint(a[2]+ox, a[3]+oy)
			cx, cy = a[4]+ox, a[5]+oy
			e.AddPoint(cx, cy)
		case OpSmoothCub, OpQuad:
			e.AddPoint(a[0]+ox, a[1]+oy)
			cx, cy = a[2]+ox, a[3]+oy
			e.AddPoint(cx, cy)
		case OpArc:
			cx, cy = a[5]+ox, a[6]+oy
			e.AddPoint(cx, cy)
		case OpClose:
			cx, cy = sx, sy
		}
	}
	return e.Rect()
}
