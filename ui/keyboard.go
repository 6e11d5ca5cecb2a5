package ui

import (
	"snake-engine/game/types"
	"snake-engine/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard reads held arrow/WASD keys from the raylib window
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Sample() types.Direction {
	var keys input.Keys
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		keys = keys.Set(types.Up)
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		keys = keys.Set(types.Down)
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		keys = keys.Set(types.Right)
	}
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		keys = keys.Set(types.Left)
	}
	return input.Resolve(keys)
}
