package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a decaying sine of fixed length
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	release  int
	rate     beep.SampleRate
}

// NewTone returns a sine at freq lasting d, fading out linearly over its
// last release
func NewTone(freq float64, d, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		length:  rate.N(d),
		release: rate.N(release),
		rate:    rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		vol := 1.0
		if left := t.length - t.position; t.release > 0 && left < t.release {
			vol = float64(left) / float64(t.release)
		}
		val := vol * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s linearly; zero or less silences it
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
