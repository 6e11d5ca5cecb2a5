package manager

import (
	"snake-engine/game/entity"
	"snake-engine/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	foodList     []entity.Food
	maxFood      int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, maxFood int, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		foodList:     make([]entity.Food, 0, maxFood),
		maxFood:      maxFood,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Candidate draws a single random cell for new food. It yields nothing when
// the cap is reached or when the draw lands on the snake or existing food; a
// crowded board spawns more slowly instead of looping.
func (fm *FoodManager) Candidate(snakeCells []types.Cell, foodCount int) (types.Cell, bool) {
	if foodCount >= fm.maxFood {
		return types.Cell{}, false
	}

	food := types.Cell{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}

	if !fm.collisionMgr.ValidateSpawnPosition(food, snakeCells, fm.Foods()) {
		return types.Cell{}, false
	}
	return food, true
}

// SpawnTick runs one spawn attempt and stores the result
func (fm *FoodManager) SpawnTick(snakeCells []types.Cell) (types.Cell, bool) {
	food, ok := fm.Candidate(snakeCells, len(fm.foodList))
	if ok {
		fm.AddFood(food)
	}
	return food, ok
}

// Eat removes the food under head, if any
func (fm *FoodManager) Eat(head types.Cell) bool {
	i := fm.indexOf(head)
	if i < 0 {
		return false
	}
	fm.removeAt(i)
	return true
}

func (fm *FoodManager) indexOf(c types.Cell) int {
	for i, f := range fm.foodList {
		if f.Cell == c {
			return i
		}
	}
	return -1
}

// Foods returns a copy of the food cells
func (fm *FoodManager) Foods() []types.Cell {
	cells := make([]types.Cell, len(fm.foodList))
	for i, f := range fm.foodList {
		cells[i] = f.Cell
	}
	return cells
}

func (fm *FoodManager) Count() int {
	return len(fm.foodList)
}

func (fm *FoodManager) AddFood(food types.Cell) {
	fm.foodList = append(fm.foodList, entity.Food{Cell: food})
}

// removeAt drops item i; order is not kept
func (fm *FoodManager) removeAt(i int) {
	last := len(fm.foodList) - 1
	fm.foodList[i] = fm.foodList[last]
	fm.foodList = fm.foodList[:last]
}

// Clear discards every food item
func (fm *FoodManager) Clear() {
	fm.foodList = fm.foodList[:0]
}
