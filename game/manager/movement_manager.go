package manager

import (
	"snake-engine/game/entity"
	"snake-engine/game/types"
)

// MovementManager advances the snake one cell per tick and remembers the cell
// the tail vacated so a pending growth can reuse it.
type MovementManager struct {
	collisionMgr *CollisionManager
	snapshot     []types.Cell
	lastTail     types.Cell
	hasLastTail  bool
}

func NewMovementManager(collisionMgr *CollisionManager) *MovementManager {
	return &MovementManager{
		collisionMgr: collisionMgr,
	}
}

// Advance moves the head one step along the heading and shifts every trailing
// segment into the pre-move cell of the segment ahead of it. Collision is
// judged against the pre-move body, so the cell the tail is about to leave is
// still fatal. On collision the snake is left untouched.
func (mm *MovementManager) Advance(snake *entity.Snake) (types.MoveOutcome, types.CollisionType) {
	if snake.Len() == 0 {
		panic("manager: advance on a snake with no segments; reset was skipped")
	}

	// Segments must read their predecessor's pre-move cell, never a partially
	// updated one.
	mm.snapshot = append(mm.snapshot[:0], snake.Cells()...)

	newHead := mm.snapshot[0].Add(snake.Heading.Vector())

	if collision := mm.collisionMgr.CheckCollision(newHead, mm.snapshot); collision != types.NoCollision {
		return types.Collided, collision
	}

	snake.SetCell(0, newHead)
	for i := 1; i < snake.Len(); i++ {
		snake.SetCell(i, mm.snapshot[i-1])
	}

	mm.lastTail = mm.snapshot[len(mm.snapshot)-1]
	mm.hasLastTail = true

	return types.Continue, types.NoCollision
}

// LastTail returns the cell vacated by the tail on the most recent move
func (mm *MovementManager) LastTail() (types.Cell, bool) {
	return mm.lastTail, mm.hasLastTail
}

// Forget drops the recorded tail position
func (mm *MovementManager) Forget() {
	mm.lastTail = types.Cell{}
	mm.hasLastTail = false
}
