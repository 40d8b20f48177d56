package sim

import (
	"log"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/state"
)

// Gesture is the stroke being drawn between pointer down and pointer up
type Gesture struct {
	Start   geom.Vec
	Points  []geom.Vec // every recorded position, start first
	Current geom.Vec
}

// Pipeline turns pointer gestures into bodies. Settings are passed in with
// each event rather than read from shared state.
type Pipeline struct {
	gesture *Gesture
	rng     state.UnitSource
}

// NewPipeline creates a pipeline drawing initial velocities from rng
func NewPipeline(rng state.UnitSource) *Pipeline {
	return &Pipeline{rng: rng}
}

// Active reports whether a gesture is in progress
func (p *Pipeline) Active() bool { return p.gesture != nil }

// Gesture returns the in-progress gesture, or nil
func (p *Pipeline) Gesture() *Gesture { return p.gesture }

// Begin starts a new gesture at pt, discarding any unfinished one
func (p *Pipeline) Begin(pt geom.Vec) {
	p.gesture = &Gesture{
		Start:   pt,
		Points:  []geom.Vec{pt},
		Current: pt,
	}
}

// Move records a pointer position. Freehand tools use every point; shape
// tools only look at the latest one.
func (p *Pipeline) Move(pt geom.Vec) {
	if p.gesture == nil {
		return
	}
	p.gesture.Points = append(p.gesture.Points, pt)
	p.gesture.Current = pt
}

// Cancel drops the gesture without creating a body
func (p *Pipeline) Cancel() {
	p.gesture = nil
}

// End finishes the gesture at pt and builds a body from it. It returns false
// when no gesture was active, the tool is unknown or the geometry is
// degenerate; the gesture is discarded in every case.
func (p *Pipeline) End(pt geom.Vec, s state.Settings) (*state.Body, bool) {
	g := p.gesture
	p.gesture = nil
	if g == nil {
		return nil, false
	}
	if last := g.Points[len(g.Points)-1]; last != pt {
		g.Points = append(g.Points, pt)
	}

	style := s.BodyStyle()
	shape, ok := geom.Build(s.Tool, g.Start, g.Points, pt, style.Width)
	if !ok {
		log.Printf("[PIPELINE] Ignoring gesture for unknown tool %q", s.Tool)
		return nil, false
	}
	if !shape.Acceptable() {
		return nil, false
	}

	vel := state.SampleVelocity(p.rng, s.Velocity)
	return state.NewBody(shape, style, vel), true
}

// Preview returns the in-progress geometry in world coordinates and the
// style to outline it with
func (p *Pipeline) Preview(s state.Settings) (geom.Path, state.Style, bool) {
	g := p.gesture
	if g == nil {
		return geom.Path{}, state.Style{}, false
	}

	style := s.PreviewStyle()
	path, ok := geom.Preview(s.Tool, g.Start, g.Points, g.Current, style.Width)
	if !ok {
		return geom.Path{}, state.Style{}, false
	}
	return path, style, true
}
