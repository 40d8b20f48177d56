package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneLengthAndRange(t *testing.T) {
	s := NewTone(440, 10*time.Millisecond, 5*time.Millisecond, sampleRate)
	want := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			assert.LessOrEqual(t, math.Abs(buf[i][0]), 1.0)
			assert.Equal(t, buf[i][0], buf[i][1])
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
	assert.NoError(t, s.Err())

	n, ok := s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestToneFadesOut(t *testing.T) {
	s := NewTone(1000, 20*time.Millisecond, 20*time.Millisecond, sampleRate)
	buf := make([][2]float64, sampleRate.N(20*time.Millisecond))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range buf[from:to] {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	quarter := n / 4
	assert.Greater(t, peak(0, quarter), peak(3*quarter, n))
}

func TestRateLimit(t *testing.T) {
	p := NewPlayer(0.5)
	clock := time.Unix(0, 0)
	p.now = func() time.Time { return clock }

	assert.True(t, p.admit(SoundCollision))
	assert.False(t, p.admit(SoundCollision))
	assert.True(t, p.admit(SoundWall))

	clock = clock.Add(MinGap)
	assert.True(t, p.admit(SoundCollision))
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1)
	p.Frame(3, 2)
	p.Close()
	assert.Empty(t, p.last)
}
