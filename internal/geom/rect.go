package geom

// Rect represents an axis-aligned rectangle by its top-left corner and extents
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Min returns the top-left corner
func (r Rect) Min() Vec { return Vec{r.X, r.Y} }

// Max returns the bottom-right corner
func (r Rect) Max() Vec { return Vec{r.X + r.W, r.Y + r.H} }

func (r Rect) Size() Size { return Size{r.W, r.H} }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// Overlaps reports whether two rectangles touch or intersect
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X+r.W < o.X || o.X+o.W < r.X ||
		r.Y+r.H < o.Y || o.Y+o.H < r.Y)
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Union returns the smallest rectangle covering both r and o
func (r Rect) Union(o Rect) Rect {
	lo := Min(r.Min(), o.Min())
	hi := Max(r.Max(), o.Max())
	return RectFromCorners(lo, hi)
}

// Expand grows the rectangle by pad on every side
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		X: r.X - pad,
		Y: r.Y - pad,
		W: r.W + 2*pad,
		H: r.H + 2*pad,
	}
}

// Degenerate reports whether both extents are below one unit
func (r Rect) Degenerate() bool {
	return r.W < 1 && r.H < 1
}

// RectFromCorners builds the rectangle spanned by two opposite corners in any order
func RectFromCorners(a, b Vec) Rect {
	lo := Min(a, b)
	hi := Max(a, b)
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// BoundsOf returns the bounding box of a point sequence. The zero Rect is
// returned for an empty sequence.
func BoundsOf(points []Vec) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = Min(lo, p)
		hi = Max(hi, p)
	}
	return RectFromCorners(lo, hi)
}
