package game

import (
	"snake-engine/game/types"
)

// FrameState is an immutable snapshot of the board taken after a tick.
// The slices are copies and are never touched by the simulation again.
type FrameState struct {
	Tick      uint64
	Heading   types.Direction
	Snake     []types.Cell // head first
	Food      []types.Cell
	JustReset bool
	Ate       bool
	Collision types.CollisionType
}

// Head returns the head cell, false when the snake is empty
func (f FrameState) Head() (types.Cell, bool) {
	if len(f.Snake) == 0 {
		return types.Cell{}, false
	}
	return f.Snake[0], true
}

// SpriteKind is the size category a renderer maps to a visual scale
type SpriteKind int

const (
	HeadSprite SpriteKind = iota
	BodySprite
	FoodSprite
)

func (k SpriteKind) String() string {
	switch k {
	case HeadSprite:
		return "head"
	case BodySprite:
		return "body"
	default:
		return "food"
	}
}

// Sprite is one occupied cell as seen by the presentation layer
type Sprite struct {
	Cell types.Cell
	Kind SpriteKind
}

// Sprites lists food first, then the body from tail to head, so the head is
// drawn last.
func (f FrameState) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(f.Food)+len(f.Snake))
	for _, c := range f.Food {
		sprites = append(sprites, Sprite{Cell: c, Kind: FoodSprite})
	}
	for i := len(f.Snake) - 1; i >= 0; i-- {
		kind := BodySprite
		if i == 0 {
			kind = HeadSprite
		}
		sprites = append(sprites, Sprite{Cell: f.Snake[i], Kind: kind})
	}
	return sprites
}
