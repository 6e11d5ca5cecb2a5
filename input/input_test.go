package input

import (
	"testing"

	"snake-engine/game"
	"snake-engine/game/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		keys Keys
		want types.Direction
	}{
		{"nothing held", 0, types.None},
		{"up", KeyUp, types.Up},
		{"left", KeyLeft, types.Left},
		{"up beats down", KeyUp | KeyDown, types.Up},
		{"down beats right", KeyDown | KeyRight, types.Down},
		{"right beats left", KeyRight | KeyLeft, types.Right},
		{"all held", KeyUp | KeyDown | KeyRight | KeyLeft, types.Up},
		{"left and down", KeyLeft | KeyDown, types.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.keys); got != tt.want {
				t.Errorf("Resolve(%04b) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestKeysSet(t *testing.T) {
	var k Keys
	k = k.Set(types.Left).Set(types.None)

	if !k.Has(types.Left) {
		t.Error("Left not recorded")
	}
	if k.Has(types.None) || k.Has(types.Up) {
		t.Errorf("unexpected keys in %04b", k)
	}
}

type fixed types.Direction

func (f fixed) Sample() types.Direction { return types.Direction(f) }

type recorder struct {
	frames []game.FrameState
}

func (r *recorder) Sample() types.Direction { return types.Up }

func (r *recorder) Observe(frame game.FrameState) error {
	r.frames = append(r.frames, frame)
	return nil
}

func TestFeed(t *testing.T) {
	rec := &recorder{}
	if err := Feed(rec, game.FrameState{Tick: 3}); err != nil {
		t.Fatalf("Feed() = %v", err)
	}
	if len(rec.frames) != 1 || rec.frames[0].Tick != 3 {
		t.Errorf("observer saw %+v", rec.frames)
	}

	if err := Feed(fixed(types.Left), game.FrameState{}); err != nil {
		t.Errorf("Feed() on a plain source = %v", err)
	}
}
