package state

import (
	"image/color"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
)

// Walls is a bit set of canvas edges touched during an update
type Walls uint8

const (
	WallLeft Walls = 1 << iota
	WallRight
	WallTop
	WallBottom
)

// Any reports whether any wall was touched
func (w Walls) Any() bool { return w != 0 }

// Body is a finished drawing moving around the canvas. Path is expressed in
// local coordinates; only Pos places it in the world.
type Body struct {
	ID    string
	Seq   uint64 // creation order, process-wide
	Path  geom.Path
	Style Style
	Pos   geom.Vec  // top-left of the bounding box
	Size  geom.Size // bounding-box extents
	Vel   geom.Vec

	paint color.Color
}

// NewBody creates a body occupying the shape's bounding box
func NewBody(shape geom.Shape, style Style, vel geom.Vec) *Body {
	return &Body{
		ID:    NextID(),
		Seq:   nextSequence(),
		Path:  shape.Path,
		Style: style,
		Pos:   shape.Bounds.Min(),
		Size:  shape.Bounds.Size(),
		Vel:   vel,
		paint: render.ColorOr(style.Color, color.White),
	}
}

// Bounds returns the world-space bounding box
func (b *Body) Bounds() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.W, H: b.Size.H}
}

// Center returns the world-space centre of the bounding box
func (b *Body) Center() geom.Vec {
	return b.Bounds().Center()
}

// Update advances the body by one frame and reflects it off the canvas edges.
// Each axis is checked independently: a body at or past an edge is clamped
// onto it and its velocity on that axis negated.
func (b *Body) Update(canvas geom.Size) Walls {
	b.Pos = b.Pos.Add(b.Vel)

	var hit Walls
	if b.Pos.X <= 0 {
		b.Pos.X = 0
		b.Vel.X = -b.Vel.X
		hit |= WallLeft
	} else if b.Pos.X+b.Size.W >= canvas.W {
		b.Pos.X = canvas.W - b.Size.W
		b.Vel.X = -b.Vel.X
		hit |= WallRight
	}

	if b.Pos.Y <= 0 {
		b.Pos.Y = 0
		b.Vel.Y = -b.Vel.Y
		hit |= WallTop
	} else if b.Pos.Y+b.Size.H >= canvas.H {
		b.Pos.Y = canvas.H - b.Size.H
		b.Vel.Y = -b.Vel.Y
		hit |= WallBottom
	}
	return hit
}

// Render strokes the path at the body's position with round caps and joins
// and a glow in the stroke colour, then fills it when the style asks.
func (b *Body) Render(c render.Canvas) {
	c.Save()
	defer c.Restore()

	c.Translate(b.Pos)
	c.SetStyle(render.Style{
		Color: b.paint,
		Width: b.Style.Width,
		Round: true,
		Glow:  true,
	})
	c.Stroke(b.Path)
	if b.Style.Filled {
		c.Fill(b.Path)
	}
}
