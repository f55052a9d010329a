package entity

import (
	"snaker/game/types"

	"golang.org/x/exp/rand"
)

// Food is the single food cell on the grid.
type Food struct {
	Position types.Point

	grid types.Grid
	rng  *rand.Rand
}

func NewFood(grid types.Grid, rng *rand.Rand) *Food {
	f := &Food{grid: grid, rng: rng}
	f.Randomize()
	return f
}

// Randomize picks a uniformly random cell over the whole grid. Cells under
// the snake are not excluded.
func (f *Food) Randomize() {
	f.Position = types.Point{
		X: f.rng.Intn(f.grid.Width),
		Y: f.rng.Intn(f.grid.Height),
	}
}
