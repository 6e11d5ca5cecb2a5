package manager

import (
	"snake-engine/game/entity"
	"snake-engine/game/types"
)

// PopulationManager owns the single snake and its spawn configuration
type PopulationManager struct {
	grid  types.Grid
	spawn types.Cell
	snake *entity.Snake
}

func NewPopulationManager(grid types.Grid, spawn types.Cell) *PopulationManager {
	behind := spawn.Add(types.Up.Opposite().Vector())
	if grid.Outside(spawn) || grid.Outside(behind) {
		panic("manager: spawn cell leaves no room for the trailing segment")
	}
	return &PopulationManager{
		grid:  grid,
		spawn: spawn,
	}
}

// InitializePopulation creates the snake at the spawn cell if none exists yet
func (pm *PopulationManager) InitializePopulation() *entity.Snake {
	if pm.snake == nil {
		pm.snake = entity.NewSnake(pm.spawn)
	}
	return pm.snake
}

func (pm *PopulationManager) GetSnake() *entity.Snake {
	return pm.snake
}

// Reset drops every segment and rebuilds the snake in place
func (pm *PopulationManager) Reset() *entity.Snake {
	if pm.snake == nil {
		return pm.InitializePopulation()
	}
	pm.snake.Clear()
	pm.snake.Respawn(pm.spawn)
	return pm.snake
}
