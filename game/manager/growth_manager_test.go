package manager

import (
	"testing"

	"snake-engine/game/types"
)

func TestGrowthSingleSlot(t *testing.T) {
	gm := NewGrowthManager()
	s := snakeAt(types.Up, types.Cell{X: 5, Y: 5}, types.Cell{X: 5, Y: 4})

	if gm.Apply(s, types.Cell{X: 5, Y: 3}) {
		t.Fatal("Apply grew the snake with nothing scheduled")
	}

	gm.Schedule()
	gm.Schedule()
	if !gm.Apply(s, types.Cell{X: 5, Y: 3}) {
		t.Fatal("Apply ignored a scheduled growth")
	}
	if gm.Apply(s, types.Cell{X: 5, Y: 2}) {
		t.Error("a second Schedule before Apply produced two segments")
	}
	if s.Len() != 3 || s.Tail() != (types.Cell{X: 5, Y: 3}) {
		t.Errorf("len %d tail %+v, want 3 and (5,3)", s.Len(), s.Tail())
	}
}

func TestGrowthClear(t *testing.T) {
	gm := NewGrowthManager()
	gm.Schedule()
	gm.Clear()

	s := snakeAt(types.Up, types.Cell{X: 5, Y: 5}, types.Cell{X: 5, Y: 4})
	if gm.Apply(s, types.Cell{X: 5, Y: 3}) || s.Len() != 2 {
		t.Error("cleared growth was still applied")
	}
}

func TestGrowthAfterAdvanceFillsVacatedCell(t *testing.T) {
	mm := NewMovementManager(NewCollisionManager(testGrid))
	gm := NewGrowthManager()
	s := snakeAt(types.Right, types.Cell{X: 3, Y: 3}, types.Cell{X: 2, Y: 3}, types.Cell{X: 1, Y: 3})

	mm.Advance(s)
	gm.Schedule()
	last, ok := mm.LastTail()
	if !ok {
		t.Fatal("LastTail unset after a move")
	}
	gm.Apply(s, last)

	want := []types.Cell{{X: 4, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}
	got := s.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
