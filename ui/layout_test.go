package ui

import (
	"testing"

	"snake-engine/game"
	"snake-engine/game/types"

	"github.com/joonazan/vec2"
)

func TestFitCentersArena(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}

	l := Fit(grid, 420, 220)

	if l.CellSize != 20 {
		t.Fatalf("CellSize = %v, want 20", l.CellSize)
	}
	if l.Origin != (vec2.Vector{X: 110, Y: 10}) {
		t.Errorf("Origin = %+v, want (110,10)", l.Origin)
	}
	if l.Size() != (vec2.Vector{X: 200, Y: 200}) {
		t.Errorf("Size() = %+v, want (200,200)", l.Size())
	}
}

func TestCellOriginFlipsRows(t *testing.T) {
	l := Fit(types.Grid{Width: 10, Height: 10}, 220, 220)

	tests := []struct {
		cell types.Cell
		want vec2.Vector
	}{
		{types.Cell{X: 0, Y: 0}, vec2.Vector{X: 10, Y: 190}},
		{types.Cell{X: 0, Y: 9}, vec2.Vector{X: 10, Y: 10}},
		{types.Cell{X: 9, Y: 0}, vec2.Vector{X: 190, Y: 190}},
	}
	for _, tt := range tests {
		if got := l.CellOrigin(tt.cell); got != tt.want {
			t.Errorf("CellOrigin(%+v) = %+v, want %+v", tt.cell, got, tt.want)
		}
	}

	up := l.Center(types.Cell{X: 4, Y: 5})
	down := l.Center(types.Cell{X: 4, Y: 4})
	if up.Y >= down.Y {
		t.Error("a higher row is not drawn above a lower one")
	}
}

func TestSpriteRect(t *testing.T) {
	l := Fit(types.Grid{Width: 10, Height: 10}, 220, 220)

	pos, side := l.SpriteRect(game.Sprite{Cell: types.Cell{X: 0, Y: 9}, Kind: game.HeadSprite})
	if side != 16 || pos != (vec2.Vector{X: 12, Y: 12}) {
		t.Errorf("head rect = %+v side %v, want (12,12) side 16", pos, side)
	}

	_, body := l.SpriteRect(game.Sprite{Kind: game.BodySprite})
	if body >= side {
		t.Errorf("body side %v not smaller than head side %v", body, side)
	}
}

func TestFitTinyWindow(t *testing.T) {
	l := Fit(types.Grid{Width: 100, Height: 100}, 30, 30)
	if l.CellSize < 1 {
		t.Errorf("CellSize = %v, want at least 1", l.CellSize)
	}
}

func TestGraphBars(t *testing.T) {
	origin := vec2.Vector{X: 10, Y: 100}
	area := vec2.Vector{X: 40, Y: 50}

	bars := GraphBars([]int{2, 4, 0, 1}, origin, area)

	want := []vec2.Vector{
		{X: 15, Y: 125},
		{X: 25, Y: 100},
		{X: 35, Y: 150},
		{X: 45, Y: 137.5},
	}
	if len(bars) != len(want) {
		t.Fatalf("GraphBars returned %d bars, want %d", len(bars), len(want))
	}
	for i := range want {
		if bars[i] != want[i] {
			t.Errorf("bar %d = %+v, want %+v", i, bars[i], want[i])
		}
	}

	if GraphBars(nil, origin, area) != nil {
		t.Error("empty history produced bars")
	}
}
