package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DriftBoard/internal/geom"
)

var background = color.NRGBA{R: 0x0d, G: 0x0f, B: 0x1a, A: 255}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#50fa7b", color.NRGBA{R: 0x50, G: 0xfa, B: 0x7b, A: 255}},
		{"50FA7B", color.NRGBA{R: 0x50, G: 0xfa, B: 0x7b, A: 255}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"Red", color.NRGBA{R: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColor("#zzzzzz")
	assert.Error(t, err)
	assert.Equal(t, color.Black, ColorOr("nope", color.Black))
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#50fa7b", ColorString(color.NRGBA{R: 0x50, G: 0xfa, B: 0x7b, A: 255}))
	assert.Equal(t, "#0d0f1a", ColorString(background))
}

func TestFadeAndMix(t *testing.T) {
	c := Fade(color.NRGBA{R: 200, A: 255}, 0.5)
	assert.Equal(t, uint8(200), c.R)
	assert.Equal(t, uint8(127), c.A)

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, Mix(color.White, color.Black, 0))
	assert.Equal(t, color.NRGBA{A: 255}, Mix(color.White, color.Black, 1))
}

func TestStackSaveRestore(t *testing.T) {
	var s Stack
	s.Translate(geom.V(5, 5))
	s.SetStyle(Style{Width: 2})
	s.Save()
	s.Translate(geom.V(1, 2))
	s.SetStyle(Style{Width: 9})
	assert.Equal(t, geom.V(6, 7), s.Offset())

	s.Restore()
	assert.Equal(t, geom.V(5, 5), s.Offset())
	assert.Equal(t, 2.0, s.Current().Width)

	// unbalanced restore is ignored
	s.Restore()
	assert.Equal(t, geom.V(5, 5), s.Offset())
}

func TestRasterStrokePaintsPixels(t *testing.T) {
	r := NewRaster(40, 40, background, 0)
	green := color.NRGBA{G: 255, A: 255}

	var b geom.PathBuilder
	b.MoveTo(geom.V(0, 10)).LineTo(geom.V(30, 10))

	r.Save()
	r.Translate(geom.V(5, 5))
	r.SetStyle(Style{Color: green, Width: 4, Round: true})
	r.Stroke(b.Build())
	r.Restore()

	assert.Equal(t, color.RGBA{G: 255, A: 255}, r.Image().RGBAAt(20, 15))
	assert.Equal(t, color.RGBA{R: 0x0d, G: 0x0f, B: 0x1a, A: 255}, r.Image().RGBAAt(20, 30))

	Clear(r)
	assert.Equal(t, color.RGBA{R: 0x0d, G: 0x0f, B: 0x1a, A: 255}, r.Image().RGBAAt(20, 15))
}

func TestRasterGlowSpreadsBeyondStroke(t *testing.T) {
	plain := NewRaster(40, 40, background, 0)
	glowing := NewRaster(40, 40, background, 10)

	var b geom.PathBuilder
	b.MoveTo(geom.V(0, 20)).LineTo(geom.V(40, 20))
	st := Style{Color: color.NRGBA{R: 255, A: 255}, Width: 2, Round: true, Glow: true}

	for _, r := range []*Raster{plain, glowing} {
		r.SetStyle(st)
		r.Stroke(b.Build())
	}

	bg := color.RGBA{R: 0x0d, G: 0x0f, B: 0x1a, A: 255}
	assert.Equal(t, bg, plain.Image().RGBAAt(20, 25))
	assert.NotEqual(t, bg, glowing.Image().RGBAAt(20, 25))
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(20, 20, background, 0)

	var b geom.PathBuilder
	b.Rect(geom.Rect{X: 2, Y: 2, W: 10, H: 10})
	r.SetStyle(Style{Color: color.NRGBA{B: 255, A: 255}})
	r.Fill(b.Build())

	assert.Equal(t, color.RGBA{B: 255, A: 255}, r.Image().RGBAAt(6, 6))
	assert.Equal(t, color.RGBA{R: 0x0d, G: 0x0f, B: 0x1a, A: 255}, r.Image().RGBAAt(15, 15))
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(100, 50)
	Clear(rec)
	rec.Save()
	rec.Translate(geom.V(3, 4))
	rec.Stroke(geom.Path{})
	rec.Restore()

	assert.Equal(t, []OpKind{OpClear, OpSave, OpTranslate, OpStroke, OpRestore}, rec.Kinds())
	assert.Equal(t, geom.Rect{W: 100, H: 50}, rec.Ops[0].Rect)
	assert.Equal(t, geom.V(3, 4), rec.Ops[3].Offset)
}
