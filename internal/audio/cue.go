// Package audio plays short tones when the brush element changes.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"sandsim/internal/particle"
)

const (
	sampleRate    = beep.SampleRate(44100)
	cueDuration   = 60 * time.Millisecond
	speakerBuffer = time.Second / 10
)

// Cue plays element-selection tones. A nil *Cue is silent, so frontends can
// run without audio hardware.
type Cue struct {
	rate beep.SampleRate
}

// NewCue initialises the speaker.
func NewCue() (*Cue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Cue{rate: sampleRate}, nil
}

// Element plays the tone bound to k.
func (c *Cue) Element(k particle.Kind) {
	if c == nil {
		return
	}
	freq := frequency(k)
	if freq <= 0 {
		return
	}
	sine, err := generators.SineTone(c.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(cueDuration), sine))
}

// Close releases the speaker.
func (c *Cue) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}

// frequency maps paintable kinds onto a pentatonic run so each selection
// is audibly distinct. Non-paintable kinds are silent.
func frequency(k particle.Kind) float64 {
	switch k {
	case particle.Air:
		return 392.00
	case particle.Sand:
		return 523.25
	case particle.Wood:
		return 587.33
	case particle.Water:
		return 659.25
	default:
		return 0
	}
}
