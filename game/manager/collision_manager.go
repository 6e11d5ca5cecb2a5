package manager

import (
	"snake-engine/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a prospective head position against the walls and
// the body as it was before the move. The old tail counts as occupied.
func (cm *CollisionManager) CheckCollision(pos types.Cell, body []types.Cell) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isBodyCollision(pos, body) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return cm.grid.Outside(pos)
}

func (cm *CollisionManager) isBodyCollision(pos types.Cell, body []types.Cell) bool {
	for _, p := range body {
		if pos == p {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is free for a new food item
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, occupied ...[]types.Cell) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	for _, cells := range occupied {
		if cm.isBodyCollision(pos, cells) {
			return false
		}
	}
	return true
}
