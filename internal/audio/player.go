// Package audio plays synthesized sound cues through the system mixer.
// Cues are generated, not loaded from assets, so there is nothing to go
// missing at runtime; if the audio device cannot be opened the caller
// falls back to the Silent player and the game carries on.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue identifies one of the game's sound effects.
type Cue int

const (
	CueBounce  Cue = iota // Paddle return blip
	CueVictory            // Win jingle
)

// Player accepts cue identifiers and plays them without blocking.
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is a Player that does nothing. Used when audio is disabled or
// the device failed to initialize.
type Silent struct{}

// Play discards the cue.
func (Silent) Play(Cue) {}

// Close is a no-op.
func (Silent) Close() {}

// Manager plays cues through a shared beep mixer. The speaker and mixer
// outlive any individual cue; playback is fire-and-forget.
type Manager struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

// Open initializes the speaker and returns a ready Manager.
func Open() (*Manager, error) {
	m := &Manager{mixer: &beep.Mixer{}}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	speaker.Play(m.mixer)
	return m, nil
}

// Play queues a cue on the mixer and returns immediately.
func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch c {
	case CueBounce:
		m.mixer.Add(bounceBlip())
	case CueVictory:
		m.mixer.Add(victoryJingle())
	}
}

// Close stops all queued cues.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Clear()
}

// bounceBlip is a short square-wave tap.
func bounceBlip() beep.Streamer {
	d := 60 * time.Millisecond
	tone := NewOscillator(880, d, WaveSquare, sampleRate)
	return newVolume(NewEnvelope(tone, d, 5*time.Millisecond, 30*time.Millisecond, sampleRate), 0.4)
}

// victoryJingle is a rising arpeggio played once when the rally is won.
func victoryJingle() beep.Streamer {
	note := func(freq float64) beep.Streamer {
		d := 180 * time.Millisecond
		tone := NewOscillator(freq, d, WaveSine, sampleRate)
		return NewEnvelope(tone, d, 10*time.Millisecond, 80*time.Millisecond, sampleRate)
	}
	seq := beep.Seq(note(523.25), note(659.25), note(783.99), note(1046.5))
	return newVolume(seq, 0.6)
}
