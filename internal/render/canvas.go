package render

import (
	"image/color"

	"DriftBoard/internal/geom"
)

// Style is the stroke/fill state applied to subsequent path operations
type Style struct {
	Color color.Color
	Width float64
	Round bool // round caps and joins
	Glow  bool // soft halo in the stroke colour, where the back end supports it
}

// Canvas is the 2D drawing surface the simulation renders onto. Paths are
// plain geometry; each back end decides how to rasterise them.
type Canvas interface {
	// Size returns the current drawable extents in world units
	Size() geom.Size
	// ClearRect resets r to the background
	ClearRect(r geom.Rect)
	// Save pushes the translation and style; Restore pops them
	Save()
	Restore()
	// Translate shifts the origin for subsequent path operations
	Translate(d geom.Vec)
	SetStyle(s Style)
	Stroke(p geom.Path)
	Fill(p geom.Path)
}

// Clear resets the whole canvas
func Clear(c Canvas) {
	sz := c.Size()
	c.ClearRect(geom.Rect{W: sz.W, H: sz.H})
}

// state is the save/restore unit shared by the canvas implementations
type state struct {
	offset geom.Vec
	style  Style
}

// Stack implements Save/Restore/Translate/SetStyle. Canvas implementations
// embed it.
type Stack struct {
	cur   state
	saved []state
}

func (s *Stack) Save() {
	s.saved = append(s.saved, s.cur)
}

func (s *Stack) Restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *Stack) Translate(d geom.Vec) {
	s.cur.offset = s.cur.offset.Add(d)
}

func (s *Stack) SetStyle(st Style) {
	s.cur.style = st
}

// Offset returns the accumulated translation
func (s *Stack) Offset() geom.Vec { return s.cur.offset }

// Current returns the active style
func (s *Stack) Current() Style { return s.cur.style }
