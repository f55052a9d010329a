package entity

import (
	"testing"

	"snaker/game/types"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestFoodStaysInBounds(t *testing.T) {
	grid := types.Grid{Width: 7, Height: 3}
	f := NewFood(grid, rand.New(rand.NewSource(42)))
	for i := 0; i < 500; i++ {
		f.Randomize()
		assert.True(t, grid.Contains(f.Position), "food at %s", f.Position)
	}
}

// Placement does not avoid the snake. On a single-cell grid the food has
// nowhere to go but under the head.
func TestFoodMayOverlapSnake(t *testing.T) {
	grid := types.Grid{Width: 1, Height: 1}
	rng := rand.New(rand.NewSource(3))
	s := NewSnake(grid, rng)
	f := NewFood(grid, rng)

	f.Randomize()
	assert.True(t, s.Occupies(f.Position))
}
