// Package sound plays short tones when the snake eats or the game resets.
package sound

import (
	"fmt"
	"time"

	"snake-engine/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	eatTone    = 880
	resetTone  = 220
)

// Player reacts to frame events
type Player interface {
	Play(frame game.FrameState)
}

// Mute ignores every frame
type Mute struct{}

func (Mute) Play(game.FrameState) {}

// Beeper plays a sine tone through the system speaker
type Beeper struct {
	duration time.Duration
}

// NewBeeper initializes the speaker. Callers fall back to Mute on error.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Beeper{duration: 50 * time.Millisecond}, nil
}

func (b *Beeper) Play(frame game.FrameState) {
	freq := Cue(frame)
	if freq == 0 {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(b.duration), sine))
}

// Cue returns the tone frequency for a frame, 0 for silence. A reset wins
// over eating.
func Cue(frame game.FrameState) float64 {
	switch {
	case frame.JustReset:
		return resetTone
	case frame.Ate:
		return eatTone
	}
	return 0
}
