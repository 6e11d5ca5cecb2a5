package ui

import (
	"fmt"

	"snake-engine/game"
	"snake-engine/game/manager"
	"snake-engine/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/joonazan/vec2"
)

var (
	headColor = rl.Color{R: 179, G: 179, B: 179, A: 255}
	bodyColor = rl.Color{R: 153, G: 153, B: 153, A: 255}
	foodColor = rl.Color{R: 77, G: 204, B: 128, A: 255}
)

const graphHeight = 120

type Renderer struct {
	grid         types.Grid
	screenWidth  int32
	screenHeight int32
	layout       Layout
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{grid: grid}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = Fit(r.grid, int(r.screenWidth), int(r.screenHeight)-graphHeight)
}

// Draw renders one frame. Only the snapshot is read, never the live game.
func (r *Renderer) Draw(frame game.FrameState, stats manager.GameStats) {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	size := r.layout.Size()
	rl.DrawRectangle(
		int32(r.layout.Origin.X)-1,
		int32(r.layout.Origin.Y)-1,
		int32(size.X)+2,
		int32(size.Y)+2,
		rl.DarkGray)

	for _, s := range frame.Sprites() {
		pos, side := r.layout.SpriteRect(s)
		rl.DrawRectangleV(
			rl.Vector2{X: float32(pos.X), Y: float32(pos.Y)},
			rl.Vector2{X: float32(side), Y: float32(side)},
			spriteColor(s.Kind))
	}

	if head, ok := frame.Head(); ok {
		r.drawHeading(head, frame.Heading)
	}

	fontSize := r.screenHeight / 45
	if fontSize < 10 {
		fontSize = 10
	}
	label := fmt.Sprintf("Length: %d  Best: %d  Games: %d  Avg: %.1f  Median: %.1f",
		len(frame.Snake), stats.BestLength, stats.GamesPlayed, stats.AverageScore, stats.MedianScore)
	rl.DrawText(label, borderPadding, borderPadding, fontSize, rl.White)

	r.drawStatsGraph(stats.History)

	rl.EndDrawing()
}

// drawStatsGraph draws the final length of recent games as bars joined by a line
func (r *Renderer) drawStatsGraph(history []int) {
	graphWidth := r.screenWidth - borderPadding*2
	graphY := r.screenHeight - graphHeight + borderPadding
	area := vec2.Vector{X: float64(graphWidth), Y: float64(graphHeight - borderPadding*3)}
	origin := vec2.Vector{X: borderPadding, Y: float64(graphY)}

	rl.DrawRectangle(borderPadding, graphY, graphWidth, int32(area.Y), rl.DarkGray)

	const barWidth = float32(4)
	bottom := float32(origin.Y + area.Y)
	bars := GraphBars(history, origin, area)
	for i, top := range bars {
		x, y := float32(top.X), float32(top.Y)
		rl.DrawRectangleV(
			rl.Vector2{X: x - barWidth/2, Y: y},
			rl.Vector2{X: barWidth, Y: bottom - y},
			rl.Color{R: 0, G: 180, B: 0, A: 180})
		if i < len(bars)-1 {
			next := bars[i+1]
			rl.DrawLineV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: float32(next.X), Y: float32(next.Y)}, rl.Green)
		}
	}
}

// drawHeading marks the head with a small triangle pointing along the heading
func (r *Renderer) drawHeading(head types.Cell, heading types.Direction) {
	o := r.layout.CellOrigin(head)
	cell := float32(r.layout.CellSize)
	half := cell / 2
	x, y := float32(o.X), float32(o.Y)

	switch heading {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: x + cell, Y: y + half},
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x + half, Y: y + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + half, Y: y + cell},
			rl.Vector2{X: x + half, Y: y},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y + cell},
			rl.Vector2{X: x + cell, Y: y + half},
			rl.Vector2{X: x, Y: y + half},
			rl.Yellow)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + cell, Y: y + half},
			rl.Yellow)
	}
}

func spriteColor(kind game.SpriteKind) rl.Color {
	switch kind {
	case game.HeadSprite:
		return headColor
	case game.BodySprite:
		return bodyColor
	default:
		return foodColor
	}
}
