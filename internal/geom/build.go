package geom

import "math"

// Shape is the output of the path builder: a path in local coordinates and
// the world-space box it occupies. Local (0,0) maps to Bounds' top-left.
type Shape struct {
	Path   Path
	Bounds Rect
	// Drawn is the extent of the raw gesture before stroke padding. It decides
	// whether the gesture was degenerate.
	Drawn Rect
}

// Acceptable reports whether the shape is worth turning into a body: the drawn
// geometry must span at least one unit on some axis and the final box must have
// positive extents on both.
func (s Shape) Acceptable() bool {
	if s.Drawn.Degenerate() {
		return false
	}
	return s.Bounds.W > 0 && s.Bounds.H > 0
}

// Build converts a finished gesture into local geometry. points is the full
// recorded sequence for freehand tools (start first) and end the pointer
// position at gesture end. The boolean is false for unknown tools.
func Build(tool Tool, start Vec, points []Vec, end Vec, strokeWidth float64) (Shape, bool) {
	switch tool {
	case ToolBrush, ToolEraser:
		return buildFreehand(start, points, strokeWidth), true
	case ToolRectangle:
		return buildRectangle(start, end), true
	case ToolCircle:
		return buildCircle(start, end), true
	case ToolTriangle:
		return buildTriangle(start, end), true
	}
	return Shape{}, false
}

// Preview returns the in-progress geometry in world coordinates
func Preview(tool Tool, start Vec, points []Vec, current Vec, strokeWidth float64) (Path, bool) {
	s, ok := Build(tool, start, points, current, strokeWidth)
	if !ok {
		return Path{}, false
	}
	return s.Path.Translate(s.Bounds.Min()), true
}

func buildFreehand(start Vec, points []Vec, strokeWidth float64) Shape {
	if len(points) == 0 {
		points = []Vec{start}
	}

	drawn := BoundsOf(points)
	box := drawn.Expand(strokeWidth / 2)
	origin := box.Min()

	var b PathBuilder
	b.MoveTo(points[0].Sub(origin))
	for _, p := range points[1:] {
		b.LineTo(p.Sub(origin))
	}
	return Shape{Path: b.Build(), Bounds: box, Drawn: drawn}
}

func buildRectangle(start, end Vec) Shape {
	box := RectFromCorners(start, end)

	var b PathBuilder
	b.Rect(Rect{W: box.W, H: box.H})
	return Shape{Path: b.Build(), Bounds: box, Drawn: box}
}

func buildCircle(start, end Vec) Shape {
	r := start.Dist(end)
	box := Rect{X: start.X - r, Y: start.Y - r, W: 2 * r, H: 2 * r}

	var b PathBuilder
	b.Arc(Vec{r, r}, r, 0, 2*math.Pi)
	return Shape{Path: b.Build(), Bounds: box, Drawn: box}
}

func buildTriangle(start, end Vec) Shape {
	box := RectFromCorners(start, end)

	var b PathBuilder
	b.MoveTo(Vec{box.W / 2, 0}).
		LineTo(Vec{0, box.H}).
		LineTo(Vec{box.W, box.H}).
		Close()
	return Shape{Path: b.Build(), Bounds: box, Drawn: box}
}
