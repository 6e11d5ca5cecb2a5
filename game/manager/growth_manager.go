package manager

import (
	"snake-engine/game/entity"
	"snake-engine/game/types"
)

// GrowthManager is a one-slot growth queue. Scheduling twice before the slot
// is applied still yields a single segment.
type GrowthManager struct {
	pending bool
}

func NewGrowthManager() *GrowthManager {
	return &GrowthManager{}
}

func (gm *GrowthManager) Schedule() {
	gm.pending = true
}

// Apply appends one segment at lastTail if a growth is pending and clears the slot
func (gm *GrowthManager) Apply(snake *entity.Snake, lastTail types.Cell) bool {
	if !gm.pending {
		return false
	}
	gm.pending = false
	snake.Append(lastTail)
	return true
}

func (gm *GrowthManager) Clear() {
	gm.pending = false
}
