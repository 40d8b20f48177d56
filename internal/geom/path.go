package geom

import (
	"fmt"
	"math"
	"slices"
)

// Op tags a path command
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpArc
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpMove:
		return "M"
	case OpLine:
		return "L"
	case OpArc:
		return "A"
	case OpClose:
		return "Z"
	default:
		return "?"
	}
}

// Command is one drawing instruction. Move and Line use P. Arc uses P as the
// centre, R as the radius and sweeps clockwise (y-down) from Start to End radians.
// Close carries no operands.
type Command struct {
	Op    Op
	P     Vec
	R     float64
	Start float64
	End   float64
}

// Path is an immutable sequence of drawing commands. The zero Path is empty.
type Path struct {
	cmds []Command
}

// Commands returns a copy of the command list
func (p Path) Commands() []Command {
	return slices.Clone(p.cmds)
}

// Len returns the number of commands
func (p Path) Len() int { return len(p.cmds) }

func (p Path) Empty() bool { return len(p.cmds) == 0 }

// Translate returns a new path shifted by d. The receiver is not modified.
func (p Path) Translate(d Vec) Path {
	out := make([]Command, len(p.cmds))
	for i, c := range p.cmds {
		if c.Op != OpClose {
			c.P = c.P.Add(d)
		}
		out[i] = c
	}
	return Path{cmds: out}
}

// String renders the path in an SVG-like notation, mostly for logs and text export
func (p Path) String() string {
	b := make([]byte, 0, 16*len(p.cmds))
	for i, c := range p.cmds {
		if i > 0 {
			b = append(b, ' ')
		}
		switch c.Op {
		case OpMove, OpLine:
			b = fmt.Appendf(b, "%s%.1f,%.1f", c.Op, c.P.X, c.P.Y)
		case OpArc:
			b = fmt.Appendf(b, "%s%.1f,%.1f,r%.1f", c.Op, c.P.X, c.P.Y, c.R)
		case OpClose:
			b = append(b, 'Z')
		}
	}
	return string(b)
}

// Polyline is a flattened sub-path
type Polyline struct {
	Points []Vec
	Closed bool
}

// Flatten converts the path into polylines, approximating arcs with chords no
// longer than step. Back ends without native arc support draw these.
func (p Path) Flatten(step float64) []Polyline {
	if step <= 0 {
		step = 2
	}

	var (
		out   []Polyline
		cur   *Polyline
		start Vec // start of the current sub-path, where a close returns to
	)
	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	open := func() {
		if cur == nil {
			cur = &Polyline{Points: []Vec{start}}
		}
	}

	for _, c := range p.cmds {
		switch c.Op {
		case OpMove:
			flush()
			start = c.P
			cur = &Polyline{Points: []Vec{c.P}}
		case OpLine:
			open()
			cur.Points = append(cur.Points, c.P)
		case OpArc:
			pts := arcPoints(c, step)
			if cur == nil {
				start = pts[0]
				cur = &Polyline{}
			}
			cur.Points = append(cur.Points, pts...)
		case OpClose:
			if cur != nil {
				cur.Closed = true
				flush()
			}
		}
	}
	flush()
	return out
}

func arcPoints(c Command, step float64) []Vec {
	sweep := c.End - c.Start
	segs := int(math.Ceil(math.Abs(sweep) * c.R / step))
	if segs < 8 {
		segs = 8
	}
	pts := make([]Vec, 0, segs+1)
	for i := 0; i <= segs; i++ {
		a := c.Start + sweep*float64(i)/float64(segs)
		pts = append(pts, Vec{c.P.X + c.R*math.Cos(a), c.P.Y + c.R*math.Sin(a)})
	}
	return pts
}

// Bounds returns the bounding box of the path's geometry, arcs included
func (p Path) Bounds() Rect {
	var pts []Vec
	for _, pl := range p.Flatten(1) {
		pts = append(pts, pl.Points...)
	}
	return BoundsOf(pts)
}

// PathBuilder accumulates commands. Build hands out an immutable Path.
type PathBuilder struct {
	cmds []Command
}

func (b *PathBuilder) MoveTo(p Vec) *PathBuilder {
	b.cmds = append(b.cmds, Command{Op: OpMove, P: p})
	return b
}

func (b *PathBuilder) LineTo(p Vec) *PathBuilder {
	b.cmds = append(b.cmds, Command{Op: OpLine, P: p})
	return b
}

// Arc adds a clockwise arc around centre c
func (b *PathBuilder) Arc(c Vec, r, start, end float64) *PathBuilder {
	b.cmds = append(b.cmds, Command{Op: OpArc, P: c, R: r, Start: start, End: end})
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.cmds = append(b.cmds, Command{Op: OpClose})
	return b
}

// Rect adds a closed axis-aligned rectangle
func (b *PathBuilder) Rect(r Rect) *PathBuilder {
	return b.MoveTo(Vec{r.X, r.Y}).
		LineTo(Vec{r.X + r.W, r.Y}).
		LineTo(Vec{r.X + r.W, r.Y + r.H}).
		LineTo(Vec{r.X, r.Y + r.H}).
		Close()
}

// Build returns the accumulated path. The builder may be reused afterwards
// without affecting the returned value.
func (b *PathBuilder) Build() Path {
	return Path{cmds: slices.Clone(b.cmds)}
}
