package geom

import "math"

// Vec is a 2D vector. It doubles as a point in world or local space.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size holds bounding-box extents.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Dot returns x1*x2 + y1*y2
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Perp returns the vector rotated 90° counter-clockwise
func (v Vec) Perp() Vec { return Vec{-v.Y, v.X} }

// Dist returns the Euclidean distance between two points
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Min returns the per-axis minimum of two points
func Min(a, b Vec) Vec { return Vec{math.Min(a.X, b.X), math.Min(a.Y, b.Y)} }

// Max returns the per-axis maximum of two points
func Max(a, b Vec) Vec { return Vec{math.Max(a.X, b.X), math.Max(a.Y, b.Y)} }
