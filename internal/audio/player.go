// Package audio plays short tones for collisions and wall bounces
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies an event tone
type Sound int

const (
	SoundCollision Sound = iota
	SoundWall
)

type voice struct {
	freq     float64
	duration time.Duration
	release  time.Duration
}

var voices = map[Sound]voice{
	SoundCollision: {freq: 660, duration: 60 * time.Millisecond, release: 45 * time.Millisecond},
	SoundWall:      {freq: 220, duration: 40 * time.Millisecond, release: 30 * time.Millisecond},
}

// MinGap is the shortest interval between two tones of the same kind
const MinGap = 80 * time.Millisecond

// Player mixes event tones into the speaker. A Player that was never
// initialised, or failed to, stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	last        map[Sound]time.Time
	now         func() time.Time
	initialized bool
}

func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		last:   make(map[Sound]time.Time),
		now:    time.Now,
	}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[AUDIO] Speaker ready at %d Hz", sampleRate)
	return nil
}

// Close drops queued tones and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Frame plays at most one tone per kind for a simulation step
func (p *Player) Frame(collisions, wallHits int) {
	if collisions > 0 {
		p.Play(SoundCollision)
	}
	if wallHits > 0 {
		p.Play(SoundWall)
	}
}

// Play queues the tone for s unless one was queued within MinGap
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.admit(s) {
		return
	}
	v := voices[s]
	speaker.Lock()
	p.mixer.Add(withVolume(NewTone(v.freq, v.duration, v.release, sampleRate), p.volume))
	speaker.Unlock()
}

// admit applies the per-kind rate limit. Callers hold p.mu.
func (p *Player) admit(s Sound) bool {
	now := p.now()
	if last, ok := p.last[s]; ok && now.Sub(last) < MinGap {
		return false
	}
	p.last[s] = now
	return true
}
