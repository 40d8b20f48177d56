package tui

import (
	"image/color"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
)

const (
	strokeRune = '█'
	glowRune   = '░'
	fillRune   = '▓'
	// glowMix is how far halo cells fade toward the background
	glowMix = 0.6
)

// Cells is the part of a tcell.Screen the canvas draws on
type Cells interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// CellCanvas draws paths as character cells. Each cell covers Scale board
// units horizontally and twice that vertically, roughly matching the shape of
// a terminal cell. The last Reserved rows are left alone.
type CellCanvas struct {
	render.Stack
	cells      Cells
	Scale      float64
	Reserved   int
	background color.Color
}

var _ render.Canvas = (*CellCanvas)(nil)

func NewCellCanvas(cells Cells, scale float64, reserved int, background color.Color) *CellCanvas {
	return &CellCanvas{
		cells:      cells,
		Scale:      scale,
		Reserved:   reserved,
		background: background,
	}
}

// Grid returns the drawable area in cells
func (c *CellCanvas) Grid() (cols, rows int) {
	w, h := c.cells.Size()
	return w, max(h-c.Reserved, 0)
}

// Size is the drawable area in board units
func (c *CellCanvas) Size() geom.Size {
	cols, rows := c.Grid()
	return geom.Size{W: float64(cols) * c.Scale, H: float64(rows) * c.Scale * 2}
}

// ToBoard maps a cell to the board point at its centre
func (c *CellCanvas) ToBoard(x, y int) geom.Vec {
	return geom.V((float64(x)+0.5)*c.Scale, (float64(y)+0.5)*c.Scale*2)
}

// ToCell maps a board point to the cell containing it
func (c *CellCanvas) ToCell(p geom.Vec) (x, y int) {
	return int(math.Floor(p.X / c.Scale)), int(math.Floor(p.Y / (c.Scale * 2)))
}

func (c *CellCanvas) ClearRect(r geom.Rect) {
	r.X += c.Offset().X
	r.Y += c.Offset().Y
	x0, y0 := c.ToCell(r.Min())
	x1, y1 := c.ToCell(r.Max())
	style := tcell.StyleDefault.Background(tcellColor(c.background))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, ' ', style)
		}
	}
}

func (c *CellCanvas) Stroke(p geom.Path) {
	st := c.Current()
	lines := p.Translate(c.Offset()).Flatten(c.Scale / 2)

	if st.Glow {
		halo := tcell.StyleDefault.
			Foreground(tcellColor(render.Mix(st.Color, c.background, glowMix))).
			Background(tcellColor(c.background))
		c.eachCell(lines, func(x, y int) {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					c.set(x+dx, y+dy, glowRune, halo)
				}
			}
		})
	}

	style := tcell.StyleDefault.
		Foreground(tcellColor(st.Color)).
		Background(tcellColor(c.background))
	c.eachCell(lines, func(x, y int) {
		c.set(x, y, strokeRune, style)
	})
}

// Fill paints every cell whose centre lies inside the path (even-odd rule)
func (c *CellCanvas) Fill(p geom.Path) {
	st := c.Current()
	style := tcell.StyleDefault.
		Foreground(tcellColor(st.Color)).
		Background(tcellColor(c.background))

	lines := p.Translate(c.Offset()).Flatten(c.Scale / 2)
	var pts []geom.Vec
	for _, l := range lines {
		pts = append(pts, l.Points...)
	}
	box := geom.BoundsOf(pts)
	_, y0 := c.ToCell(box.Min())
	_, y1 := c.ToCell(box.Max())

	for y := y0; y <= y1; y++ {
		cy := (float64(y) + 0.5) * c.Scale * 2
		var xs []float64
		for _, l := range lines {
			n := len(l.Points)
			for i := range n {
				a, b := l.Points[i], l.Points[(i+1)%n]
				if (a.Y <= cy) == (b.Y <= cy) {
					continue
				}
				xs = append(xs, a.X+(cy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i]/c.Scale - 0.5)); float64(x)+0.5 <= xs[i+1]/c.Scale; x++ {
				c.set(x, y, fillRune, style)
			}
		}
	}
}

// eachCell visits the cells under every segment. Segments are sampled at a
// quarter cell so diagonal runs stay connected. Closed polylines include the
// segment back to their first point.
func (c *CellCanvas) eachCell(lines []geom.Polyline, fn func(x, y int)) {
	step := c.Scale / 4
	for _, l := range lines {
		if len(l.Points) == 1 {
			fn(c.ToCell(l.Points[0]))
			continue
		}
		pts := l.Points
		if l.Closed {
			pts = append(slices.Clip(pts), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			n := max(int(math.Ceil(a.Dist(b)/step)), 1)
			for k := 0; k <= n; k++ {
				fn(c.ToCell(a.Add(b.Sub(a).Scale(float64(k) / float64(n)))))
			}
		}
	}
}

func (c *CellCanvas) set(x, y int, r rune, style tcell.Style) {
	cols, rows := c.Grid()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	c.cells.SetContent(x, y, r, nil, style)
}

func tcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
