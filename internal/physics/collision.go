// Package physics resolves contacts between bodies. All bodies are treated as
// equal-mass points; shape only matters through the bounding box.
package physics

import (
	"math"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/state"
)

// Overlap returns the penetration depth of a and b's bounding boxes on each
// axis, and the centre-to-centre delta (a minus b). The boxes overlap when
// both depths are positive.
func Overlap(a, b *state.Body) (depth, delta geom.Vec) {
	delta = a.Center().Sub(b.Center())
	halfW := a.Size.W/2 + b.Size.W/2
	halfH := a.Size.H/2 + b.Size.H/2
	depth = geom.Vec{
		X: halfW - math.Abs(delta.X),
		Y: halfH - math.Abs(delta.Y),
	}
	return depth, delta
}

// Colliding reports whether the bounding boxes of a and b overlap
func Colliding(a, b *state.Body) bool {
	depth, _ := Overlap(a, b)
	return depth.X > 0 && depth.Y > 0
}

// Resolve detects and resolves at most one contact between a and b. It
// separates the boxes along the shallower axis and exchanges the velocity
// components along the contact normal. Returns false and leaves both bodies
// untouched when they do not overlap.
func Resolve(a, b *state.Body) bool {
	depth, delta := Overlap(a, b)
	if depth.X <= 0 || depth.Y <= 0 {
		return false
	}

	Separate(a, b, depth, delta)
	Exchange(a, b)
	return true
}

// Separate pushes a and b apart by the minimum translation: the full depth of
// the shallower axis, split equally. Ties go to the vertical axis.
func Separate(a, b *state.Body, depth, delta geom.Vec) {
	if depth.X < depth.Y {
		half := depth.X / 2
		if delta.X > 0 {
			a.Pos.X += half
			b.Pos.X -= half
		} else {
			a.Pos.X -= half
			b.Pos.X += half
		}
		return
	}

	half := depth.Y / 2
	if delta.Y > 0 {
		a.Pos.Y += half
		b.Pos.Y -= half
	} else {
		a.Pos.Y -= half
		b.Pos.Y += half
	}
}

// Exchange swaps the normal velocity components of a and b for an equal-mass
// elastic collision. The normal runs between the current centres, so callers
// separate first. Coincident centres use a distance of 1 instead of dividing
// by zero.
func Exchange(a, b *state.Body) {
	n := b.Center().Sub(a.Center())
	dist := n.Len()
	if dist == 0 {
		dist = 1
	}
	normal := n.Scale(1 / dist)
	tangent := normal.Perp()

	an, at := a.Vel.Dot(normal), a.Vel.Dot(tangent)
	bn, bt := b.Vel.Dot(normal), b.Vel.Dot(tangent)

	a.Vel = normal.Scale(bn).Add(tangent.Scale(at))
	b.Vel = normal.Scale(an).Add(tangent.Scale(bt))
}
