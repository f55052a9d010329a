package manager

import (
	"snaker/game/entity"
	"snaker/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	food *entity.Food
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		food: entity.NewFood(grid, rng),
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food.Position
}

// Place puts the food on a specific cell. Points outside the grid are wrapped.
func (fm *FoodManager) Place(p types.Point) {
	fm.food.Position = fm.grid.Wrap(p)
}

// Respawn moves the food to a new random cell after it has been eaten.
func (fm *FoodManager) Respawn() types.Point {
	fm.food.Randomize()
	return fm.food.Position
}
