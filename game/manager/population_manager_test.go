package manager

import (
	"testing"

	"snake-engine/game/types"
)

func TestPopulationReset(t *testing.T) {
	spawn := types.Cell{X: 3, Y: 3}
	pm := NewPopulationManager(testGrid, spawn)
	s := pm.InitializePopulation()

	if pm.InitializePopulation() != s {
		t.Fatal("InitializePopulation replaced the existing snake")
	}

	s.Heading = types.Left
	s.Append(types.Cell{X: 3, Y: 1})
	s.SetCell(0, types.Cell{X: 8, Y: 8})

	got := pm.Reset()
	if got != s {
		t.Error("Reset returned a different snake")
	}
	if s.Len() != types.InitialSnakeSize {
		t.Errorf("Len() = %d after Reset, want %d", s.Len(), types.InitialSnakeSize)
	}
	if s.Head() != spawn || s.Tail() != (types.Cell{X: 3, Y: 2}) {
		t.Errorf("head %+v tail %+v, want (3,3) and (3,2)", s.Head(), s.Tail())
	}
	if s.Heading != types.Up {
		t.Errorf("Heading = %v after Reset, want up", s.Heading)
	}
}

func TestPopulationResetWithoutSnake(t *testing.T) {
	pm := NewPopulationManager(testGrid, types.Cell{X: 0, Y: 1})
	if pm.GetSnake() != nil {
		t.Fatal("snake exists before InitializePopulation")
	}
	if s := pm.Reset(); s == nil || s.Head() != (types.Cell{X: 0, Y: 1}) {
		t.Errorf("Reset without a snake gave %+v", s)
	}
}

func TestPopulationInvalidSpawnPanics(t *testing.T) {
	tests := []struct {
		name  string
		spawn types.Cell
	}{
		{"bottom row", types.Cell{X: 3, Y: 0}},
		{"outside", types.Cell{X: 10, Y: 3}},
		{"negative", types.Cell{X: -1, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("spawn %+v accepted", tt.spawn)
				}
			}()
			NewPopulationManager(testGrid, tt.spawn)
		})
	}
}
