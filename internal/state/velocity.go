package state

import "DriftBoard/internal/geom"

// UnitSource yields independent samples in [0,1). *math/rand.Rand satisfies it.
type UnitSource interface {
	Float64() float64
}

// SampleVelocity draws each axis uniformly from [-base, base)
func SampleVelocity(src UnitSource, base float64) geom.Vec {
	vx := (src.Float64() - 0.5) * base * 2
	vy := (src.Float64() - 0.5) * base * 2
	return geom.Vec{X: vx, Y: vy}
}

// Sequence is a UnitSource replaying fixed values in a loop, for deterministic
// runs. An empty Sequence always yields 0.5 (zero velocity).
type Sequence struct {
	Values []float64
	next   int
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
