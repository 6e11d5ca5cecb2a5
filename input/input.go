// Package input is the contract between device adapters and the simulation:
// adapters report which direction keys are held, Resolve turns that into at
// most one requested direction.
package input

import (
	"snake-engine/game"
	"snake-engine/game/types"
)

// Source supplies at most one requested direction per sample. None means no
// directional key was held.
type Source interface {
	Sample() types.Direction
}

// Observer is implemented by sources that decide from what they see, such
// as an autopilot. Loops hand it every frame the simulation produces.
type Observer interface {
	Observe(frame game.FrameState) error
}

// Feed passes frame to src when src is an Observer
func Feed(src Source, frame game.FrameState) error {
	if obs, ok := src.(Observer); ok {
		return obs.Observe(frame)
	}
	return nil
}

// Keys is the set of direction keys held during one frame
type Keys uint8

const (
	KeyUp Keys = 1 << iota
	KeyDown
	KeyRight
	KeyLeft
)

// Set returns k with the key for dir added
func (k Keys) Set(dir types.Direction) Keys {
	return k | keyFor(dir)
}

func (k Keys) Has(dir types.Direction) bool {
	bit := keyFor(dir)
	return bit != 0 && k&bit != 0
}

func keyFor(dir types.Direction) Keys {
	switch dir {
	case types.Up:
		return KeyUp
	case types.Down:
		return KeyDown
	case types.Right:
		return KeyRight
	case types.Left:
		return KeyLeft
	default:
		return 0
	}
}

// Resolve picks one direction from the held keys. Simultaneous keys resolve
// by the fixed order Up, Down, Right, Left; the first one held wins.
func Resolve(k Keys) types.Direction {
	for _, dir := range types.Directions {
		if k.Has(dir) {
			return dir
		}
	}
	return types.None
}
