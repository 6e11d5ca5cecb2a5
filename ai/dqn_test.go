package ai

import (
	"math"
	"testing"

	"snake-engine/game"
	"snake-engine/game/types"
)

func newTestDQN(t *testing.T, seed uint64) *DQNBrain {
	t.Helper()
	b, err := NewBrain(BrainDQN, grid, seed)
	if err != nil {
		t.Fatalf("NewBrain(dqn) = %v", err)
	}
	dqn, ok := b.(*DQNBrain)
	if !ok {
		t.Fatalf("NewBrain(dqn) returned %T", b)
	}
	return dqn
}

func TestDQNNeverReverses(t *testing.T) {
	a := NewAutopilot(grid, newTestDQN(t, 5), 6)
	a.Epsilon = 0 // always take the network's choice

	for _, heading := range types.Directions {
		frames := []game.FrameState{
			{Heading: heading, Snake: []types.Cell{{X: 5, Y: 5}}, Food: []types.Cell{{X: 1, Y: 8}}},
			{Heading: heading, Snake: []types.Cell{{X: 0, Y: 0}}, Food: []types.Cell{{X: 9, Y: 9}}},
			{Heading: heading, Snake: []types.Cell{{X: 9, Y: 4}, {X: 8, Y: 4}}},
		}
		for i := 0; i < 20; i++ {
			frame := frames[i%len(frames)]
			if err := a.Observe(frame); err != nil {
				t.Fatalf("Observe() = %v", err)
			}
			if a.Sample() == heading.Opposite() {
				t.Fatalf("heading %v: network picked the reversal", heading)
			}
		}
	}
}

func TestDQNLearnMovesTowardsTarget(t *testing.T) {
	b := newTestDQN(t, 11)
	s := State{RelativeFoodDir: [2]int{1, 0}, FoodDistance: 2, DangerDirs: [4]bool{true, false, false, false}}

	before, err := b.Values(s)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		if err := b.Learn(s, 1, 1, State{}, true); err != nil {
			t.Fatalf("Learn() = %v", err)
		}
	}
	after, err := b.Values(s)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(after[1]-1) >= math.Abs(before[1]-1) {
		t.Errorf("value for the rewarded action went %v -> %v, not closer to 1", before[1], after[1])
	}
}

func TestDQNSameSeedSameValues(t *testing.T) {
	s := State{RelativeFoodDir: [2]int{-1, 1}, FoodDistance: 5}
	a, err := newTestDQN(t, 3).Values(s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestDQN(t, 3).Values(s)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestDQNPlaysGame(t *testing.T) {
	settings := game.DefaultSettings()
	settings.Seed = 9
	g := game.NewGame(settings)
	a := NewAutopilot(settings.Grid, newTestDQN(t, 10), 12)

	frame := g.State()
	for i := 0; i < 300; i++ {
		if err := a.Observe(frame); err != nil {
			t.Fatalf("tick %d: Observe() = %v", frame.Tick, err)
		}
		if a.Sample() == frame.Heading.Opposite() {
			t.Fatalf("tick %d: reversal proposed", frame.Tick)
		}
		frame = g.Tick(a.Sample())
	}
}
