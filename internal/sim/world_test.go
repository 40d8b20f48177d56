package sim

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
	"DriftBoard/internal/state"
)

func newTestWorld(values ...float64) *World {
	return NewWorld(geom.Size{W: 400, H: 300}, &state.Sequence{Values: values})
}

func withTool(tool geom.Tool) state.Settings {
	s := state.DefaultSettings()
	s.Tool = tool
	return s
}

func drawRect(t *testing.T, w *World, from, to geom.Vec) *state.Body {
	t.Helper()
	w.Begin(from)
	w.Move(to)
	body, ok := w.End(to, withTool(geom.ToolRectangle))
	require.True(t, ok)
	return body
}

func TestEndRectangle(t *testing.T) {
	w := newTestWorld(0.75, 0.25)
	s := withTool(geom.ToolRectangle)
	s.Velocity = 2

	w.Begin(geom.V(100, 100))
	w.Move(geom.V(120, 90))
	w.Move(geom.V(150, 80))
	body, ok := w.End(geom.V(150, 80), s)
	require.True(t, ok)

	assert.Equal(t, geom.V(100, 80), body.Pos)
	assert.Equal(t, geom.Size{W: 50, H: 20}, body.Size)
	assert.Equal(t, geom.V(1, -1), body.Vel)
	assert.Equal(t, "#50fa7b", body.Style.Color)
	assert.Equal(t, 5.0, body.Style.Width)
	assert.False(t, body.Style.Filled)
	assert.Equal(t, 1, w.Len())
	assert.False(t, w.Drawing())
}

func TestEndBrushUsesEveryPoint(t *testing.T) {
	w := newTestWorld()
	s := withTool(geom.ToolBrush)
	s.Size = 4

	w.Begin(geom.V(10, 10))
	w.Move(geom.V(20, 10))
	body, ok := w.End(geom.V(20, 20), s)
	require.True(t, ok)

	assert.Equal(t, geom.V(8, 8), body.Pos)
	assert.Equal(t, geom.Size{W: 14, H: 14}, body.Size)
	assert.Equal(t, geom.V(0, 0), body.Vel)
}

func TestEndEraserStyle(t *testing.T) {
	w := newTestWorld()
	w.Begin(geom.V(10, 10))
	w.Move(geom.V(60, 40))
	body, ok := w.End(geom.V(60, 40), withTool(geom.ToolEraser))
	require.True(t, ok)

	assert.Equal(t, state.EraserColor, body.Style.Color)
	assert.Equal(t, 15.0, body.Style.Width)
}

func TestEndRejects(t *testing.T) {
	tests := []struct {
		name    string
		tool    geom.Tool
		gesture func(w *World)
	}{
		{"click without motion", geom.ToolBrush, func(w *World) { w.Begin(geom.V(10, 10)) }},
		{"flat rectangle", geom.ToolRectangle, func(w *World) {
			w.Begin(geom.V(10, 10))
			w.Move(geom.V(60, 10))
		}},
		{"zero radius circle", geom.ToolCircle, func(w *World) { w.Begin(geom.V(50, 50)) }},
		{"unknown tool", geom.Tool("spray"), func(w *World) {
			w.Begin(geom.V(10, 10))
			w.Move(geom.V(60, 60))
		}},
		{"no gesture", geom.ToolRectangle, func(w *World) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			tt.gesture(w)
			last := geom.V(10, 10)
			if g := w.pipeline.Gesture(); g != nil {
				last = g.Current
			}

			body, ok := w.End(last, withTool(tt.tool))
			assert.False(t, ok)
			assert.Nil(t, body)
			assert.Zero(t, w.Len())
			assert.False(t, w.Drawing())
		})
	}
}

func TestMoveWithoutGestureIsIgnored(t *testing.T) {
	w := newTestWorld()
	w.Move(geom.V(5, 5))
	assert.False(t, w.Drawing())
}

func TestCancelDropsGesture(t *testing.T) {
	w := newTestWorld()
	w.Begin(geom.V(10, 10))
	w.Move(geom.V(80, 80))
	w.Cancel()

	_, ok := w.End(geom.V(80, 80), withTool(geom.ToolRectangle))
	assert.False(t, ok)
	assert.Zero(t, w.Len())
}

func TestClear(t *testing.T) {
	w := newTestWorld()
	drawRect(t, w, geom.V(10, 10), geom.V(30, 30))
	drawRect(t, w, geom.V(100, 100), geom.V(130, 140))
	require.Equal(t, 2, w.Len())

	w.Clear()
	assert.Zero(t, w.Len())
	assert.Empty(t, w.Bodies())
	assert.Equal(t, Stats{}, w.Step())
}

func TestStepResolvesOverlap(t *testing.T) {
	w := newTestWorld()
	a := drawRect(t, w, geom.V(10, 10), geom.V(30, 30))
	b := drawRect(t, w, geom.V(20, 10), geom.V(40, 30))

	st := w.Step()
	assert.Equal(t, Stats{Bodies: 2, Collisions: 1}, st)
	assert.Equal(t, geom.V(5, 10), a.Pos)
	assert.Equal(t, geom.V(25, 10), b.Pos)

	st = w.Step()
	assert.Zero(t, st.Collisions)
}

func TestStepCountsWallHits(t *testing.T) {
	w := newTestWorld()
	body := drawRect(t, w, geom.V(0, 10), geom.V(20, 30))
	drawRect(t, w, geom.V(200, 100), geom.V(220, 130))

	st := w.Step()
	assert.Equal(t, 1, st.WallHits)
	assert.Equal(t, 0.0, body.Pos.X)
}

func TestStepKeepsBodiesInside(t *testing.T) {
	w := newTestWorld(0.99, 0.01, 0.05, 0.95, 0.6, 0.3)
	s := withTool(geom.ToolRectangle)
	s.Velocity = 7

	for i := range 6 {
		from := geom.V(float64(20+i*50), 40)
		w.Begin(from)
		_, ok := w.End(from.Add(geom.V(30, 40)), s)
		require.True(t, ok)
	}

	size := w.Size()
	for range 500 {
		w.Step()
		for _, b := range w.Bodies() {
			// resolve may push a body past an edge until its next update
			b.Update(size)
			assert.GreaterOrEqual(t, b.Pos.X, 0.0)
			assert.GreaterOrEqual(t, b.Pos.Y, 0.0)
			assert.LessOrEqual(t, b.Pos.X, size.W-b.Size.W)
			assert.LessOrEqual(t, b.Pos.Y, size.H-b.Size.H)
		}
	}
}

func TestResizeChangesBounds(t *testing.T) {
	w := newTestWorld()
	body := drawRect(t, w, geom.V(300, 200), geom.V(350, 250))

	w.Resize(geom.Size{W: 200, H: 150})
	w.Step()
	assert.Equal(t, geom.V(150, 100), body.Pos)
}

func TestRenderOrder(t *testing.T) {
	w := newTestWorld()
	drawRect(t, w, geom.V(10, 10), geom.V(30, 30))
	w.Begin(geom.V(100, 100))
	w.Move(geom.V(140, 120))

	rec := render.NewRecorder(400, 300)
	w.Render(rec, withTool(geom.ToolRectangle))

	assert.Equal(t, []render.OpKind{
		render.OpClear,
		render.OpSave, render.OpTranslate, render.OpStyle, render.OpStroke, render.OpRestore,
		render.OpSave, render.OpStyle, render.OpStroke, render.OpRestore,
	}, rec.Kinds())

	assert.Equal(t, geom.Rect{W: 400, H: 300}, rec.Ops[0].Rect)

	body := rec.Ops[4]
	assert.Equal(t, geom.V(10, 10), body.Offset)
	assert.True(t, body.Style.Glow)

	preview := rec.Ops[8]
	assert.Equal(t, geom.Vec{}, preview.Offset)
	assert.False(t, preview.Style.Glow)
	assert.Equal(t, geom.Rect{X: 100, Y: 100, W: 40, H: 20}, preview.Path.Bounds())
}

func TestRenderWithoutGesture(t *testing.T) {
	w := newTestWorld()
	rec := render.NewRecorder(400, 300)
	w.Render(rec, state.DefaultSettings())
	assert.Equal(t, []render.OpKind{render.OpClear}, rec.Kinds())
}

func TestEraserPreviewIsWhite(t *testing.T) {
	w := newTestWorld()
	w.Begin(geom.V(10, 10))
	w.Move(geom.V(50, 30))

	rec := render.NewRecorder(400, 300)
	w.Render(rec, withTool(geom.ToolEraser))

	last := rec.Ops[len(rec.Ops)-2]
	require.Equal(t, render.OpStroke, last.Kind)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, last.Style.Color)
	assert.Equal(t, 5.0, last.Style.Width)
}

func TestFrameStepsThenRenders(t *testing.T) {
	w := newTestWorld(1, 0.5)
	s := withTool(geom.ToolRectangle)
	s.Velocity = 3

	w.Begin(geom.V(10, 10))
	body, ok := w.End(geom.V(40, 40), s)
	require.True(t, ok)
	require.Equal(t, geom.V(3, 0), body.Vel)

	rec := render.NewRecorder(400, 300)
	st := w.Frame(rec, s)
	assert.Equal(t, 1, st.Bodies)

	var stroke render.Op
	for _, op := range rec.Ops {
		if op.Kind == render.OpStroke {
			stroke = op
		}
	}
	assert.Equal(t, geom.V(13, 10), stroke.Offset)
}
