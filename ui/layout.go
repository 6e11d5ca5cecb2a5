package ui

import (
	"snake-engine/game"
	"snake-engine/game/types"

	"github.com/joonazan/vec2"
)

const borderPadding = 10 // Padding around game area

// Sprite scale relative to a full cell
var spriteScale = map[game.SpriteKind]float64{
	game.HeadSprite: 0.8,
	game.BodySprite: 0.65,
	game.FoodSprite: 0.8,
}

// Layout translates grid cells into screen space. Grid Y grows upward while
// screen Y grows downward, so rows are flipped.
type Layout struct {
	Grid     types.Grid
	CellSize float64
	Origin   vec2.Vector // top-left corner of the arena on screen
}

// Fit sizes the cells so the arena fills the given screen area inside the padding
func Fit(grid types.Grid, screenWidth, screenHeight int) Layout {
	availableWidth := float64(screenWidth - borderPadding*2)
	availableHeight := float64(screenHeight - borderPadding*2)

	cell := availableWidth / float64(grid.Width)
	if h := availableHeight / float64(grid.Height); h < cell {
		cell = h
	}
	if cell < 1 {
		cell = 1
	}

	return Layout{
		Grid:     grid,
		CellSize: cell,
		Origin: vec2.Vector{
			X: (float64(screenWidth) - cell*float64(grid.Width)) / 2,
			Y: (float64(screenHeight) - cell*float64(grid.Height)) / 2,
		},
	}
}

// CellOrigin returns the top-left corner of c on screen
func (l Layout) CellOrigin(c types.Cell) vec2.Vector {
	row := l.Grid.Height - 1 - c.Y
	return vec2.Vector{
		X: l.Origin.X + float64(c.X)*l.CellSize,
		Y: l.Origin.Y + float64(row)*l.CellSize,
	}
}

// Center returns the centre of c on screen
func (l Layout) Center(c types.Cell) vec2.Vector {
	o := l.CellOrigin(c)
	return vec2.Vector{X: o.X + l.CellSize/2, Y: o.Y + l.CellSize/2}
}

// SpriteRect returns the top-left corner and side length of a sprite, centred in its cell
func (l Layout) SpriteRect(s game.Sprite) (vec2.Vector, float64) {
	side := l.CellSize * spriteScale[s.Kind]
	c := l.Center(s.Cell)
	return vec2.Vector{X: c.X - side/2, Y: c.Y - side/2}, side
}

// Size returns the arena size on screen
func (l Layout) Size() vec2.Vector {
	return vec2.Vector{
		X: l.CellSize * float64(l.Grid.Width),
		Y: l.CellSize * float64(l.Grid.Height),
	}
}

// GraphBars places one bar per recorded game inside area, oldest on the
// left. Each vector is the bar's top; bars extend down to the area's bottom
// edge. Heights are scaled to the longest game in history.
func GraphBars(history []int, origin, area vec2.Vector) []vec2.Vector {
	if len(history) == 0 {
		return nil
	}
	maxScore := 0
	for _, s := range history {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore == 0 {
		maxScore = 1
	}

	spacing := area.X / float64(len(history))
	bottom := origin.Y + area.Y
	bars := make([]vec2.Vector, len(history))
	for i, s := range history {
		bars[i] = vec2.Vector{
			X: origin.X + spacing*(float64(i)+0.5),
			Y: bottom - area.Y*float64(s)/float64(maxScore),
		}
	}
	return bars
}
