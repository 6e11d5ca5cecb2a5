package entity

import "snake-engine/game/types"

// Food is a single edible item. Items are interchangeable.
type Food struct {
	Cell types.Cell
}
