package sound

import (
	"testing"

	"snake-engine/game"
)

func TestCue(t *testing.T) {
	tests := []struct {
		name  string
		frame game.FrameState
		want  float64
	}{
		{"quiet", game.FrameState{}, 0},
		{"ate", game.FrameState{Ate: true}, eatTone},
		{"reset", game.FrameState{JustReset: true}, resetTone},
		{"reset wins", game.FrameState{Ate: true, JustReset: true}, resetTone},
	}
	for _, tt := range tests {
		if got := Cue(tt.frame); got != tt.want {
			t.Errorf("%s: Cue() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMuteIsPlayer(t *testing.T) {
	var p Player = Mute{}
	p.Play(game.FrameState{Ate: true})
}
