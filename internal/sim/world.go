// Package sim runs the drawing board: bodies advance, collide and are
// rendered once per frame, while pointer gestures add new bodies between
// frames.
package sim

import (
	"image/color"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/physics"
	"DriftBoard/internal/render"
	"DriftBoard/internal/state"
)

// Stats summarises one simulation step
type Stats struct {
	Bodies     int
	Collisions int
	WallHits   int
}

// World owns the body collection, the canvas extents and the gesture
// pipeline. It is driven from a single goroutine: pointer events and frames
// never interleave.
type World struct {
	board    *state.Board
	size     geom.Size
	pipeline *Pipeline
}

// NewWorld creates an empty world. rng seeds initial body velocities.
func NewWorld(size geom.Size, rng state.UnitSource) *World {
	return &World{
		board:    state.NewBoard(),
		size:     size,
		pipeline: NewPipeline(rng),
	}
}

func (w *World) Size() geom.Size { return w.size }

// Resize changes the canvas extents. Bodies outside the new bounds are pulled
// back in by their next update.
func (w *World) Resize(size geom.Size) { w.size = size }

func (w *World) Len() int { return w.board.Len() }

// Bodies returns the live bodies in insertion order
func (w *World) Bodies() []*state.Body { return w.board.Bodies() }

// Clear removes every body
func (w *World) Clear() { w.board.Clear() }

// Drawing reports whether a gesture is in progress
func (w *World) Drawing() bool { return w.pipeline.Active() }

func (w *World) Begin(pt geom.Vec) { w.pipeline.Begin(pt) }

func (w *World) Move(pt geom.Vec) { w.pipeline.Move(pt) }

func (w *World) Cancel() { w.pipeline.Cancel() }

// End finishes the gesture and, when it produced a body, adds it to the board
func (w *World) End(pt geom.Vec, s state.Settings) (*state.Body, bool) {
	body, ok := w.pipeline.End(pt, s)
	if !ok {
		return nil, false
	}
	w.board.Add(body)
	return body, true
}

// Step advances every body, then resolves every unordered pair once in
// insertion order. A body moved by an earlier pair is used as-is by later
// pairs in the same step.
func (w *World) Step() Stats {
	st := Stats{Bodies: w.board.Len()}

	w.board.Each(func(_ int, b *state.Body) {
		if b.Update(w.size).Any() {
			st.WallHits++
		}
	})
	w.board.Pairs(func(a, b *state.Body) {
		if physics.Resolve(a, b) {
			st.Collisions++
		}
	})
	return st
}

// Render clears the canvas, draws every body and then the gesture preview
func (w *World) Render(c render.Canvas, s state.Settings) {
	render.Clear(c)
	w.board.Each(func(_ int, b *state.Body) {
		b.Render(c)
	})

	path, style, ok := w.pipeline.Preview(s)
	if !ok {
		return
	}
	c.Save()
	c.SetStyle(render.Style{
		Color: render.ColorOr(style.Color, color.White),
		Width: style.Width,
		Round: true,
	})
	c.Stroke(path)
	c.Restore()
}

// Frame runs one display refresh: Step followed by Render
func (w *World) Frame(c render.Canvas, s state.Settings) Stats {
	st := w.Step()
	w.Render(c, s)
	return st
}
