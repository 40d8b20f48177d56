package state

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"DriftBoard/internal/geom"
)

func TestSettingsStyles(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Style{Color: "#50fa7b", Width: 5}, s.BodyStyle())
	assert.Equal(t, Style{Color: "#50fa7b", Width: 5}, s.PreviewStyle())

	s.Tool = geom.ToolEraser
	assert.Equal(t, Style{Color: EraserColor, Width: 15}, s.BodyStyle())
	assert.Equal(t, Style{Color: EraserPreviewColor, Width: 5}, s.PreviewStyle())
}

func TestSampleVelocity(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		base   float64
		want   geom.Vec
	}{
		{"centre is still", []float64{0.5, 0.5}, 3, geom.V(0, 0)},
		{"low end", []float64{0, 0}, 2, geom.V(-2, -2)},
		{"independent axes", []float64{0.75, 0.25}, 1, geom.V(0.5, -0.5)},
		{"zero base", []float64{0.9, 0.1}, 0, geom.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleVelocity(&Sequence{Values: tt.values}, tt.base)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestSampleVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := SampleVelocity(rng, 4)
		assert.True(t, v.X >= -4 && v.X < 4)
		assert.True(t, v.Y >= -4 && v.Y < 4)
	}
}

func TestSequenceLoops(t *testing.T) {
	s := &Sequence{Values: []float64{0.1, 0.2}}
	assert.Equal(t, []float64{0.1, 0.2, 0.1}, []float64{s.Float64(), s.Float64(), s.Float64()})
	assert.Equal(t, 0.5, (&Sequence{}).Float64())
}
