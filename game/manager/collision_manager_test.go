package manager

import (
	"testing"

	"snaker/game/entity"
	"snaker/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestHandleMovementEatsFood(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	rng := rand.New(rand.NewSource(9))
	snake := entity.NewSnake(grid, rng)
	snake.Direction = types.RIGHT
	foodMgr := NewFoodManager(grid, rng)
	foodMgr.Place(types.Point{X: 6, Y: 5})
	cm := NewCollisionManager(foodMgr)

	res := cm.HandleMovement(snake)

	require.False(t, res.Dead)
	assert.True(t, res.AteFood)
	assert.Equal(t, types.Point{X: 6, Y: 5}, res.Head)
	assert.Equal(t, 2, snake.Length)
	assert.Equal(t, 1, snake.Score)
	assert.True(t, grid.Contains(foodMgr.GetFood()))
	assert.LessOrEqual(t, len(snake.Body), snake.Length)
}

func TestHandleMovementWithoutFood(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	rng := rand.New(rand.NewSource(9))
	snake := entity.NewSnake(grid, rng)
	snake.Direction = types.UP
	foodMgr := NewFoodManager(grid, rng)
	foodMgr.Place(types.Point{X: 0, Y: 0})
	cm := NewCollisionManager(foodMgr)

	res := cm.HandleMovement(snake)

	assert.False(t, res.Dead)
	assert.False(t, res.AteFood)
	assert.Equal(t, types.Point{X: 5, Y: 4}, res.Head)
	assert.Equal(t, types.Point{X: 0, Y: 0}, foodMgr.GetFood())
	assert.Zero(t, snake.Score)
}

func TestHandleMovementDeadNeverEats(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	rng := rand.New(rand.NewSource(9))
	snake := entity.NewSnake(grid, rng)
	snake.Body = []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	snake.Length = 4
	snake.Score = 3
	snake.Direction = types.RIGHT
	foodMgr := NewFoodManager(grid, rng)
	foodMgr.Place(types.Point{X: 2, Y: 1})
	cm := NewCollisionManager(foodMgr)

	res := cm.HandleMovement(snake)

	assert.True(t, res.Dead)
	assert.False(t, res.AteFood)
	assert.Equal(t, 3, snake.Score)
	assert.Equal(t, 4, snake.Length)
}

func TestPlaceWrapsOutOfRangeCells(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))
	fm.Place(types.Point{X: 5, Y: -1})
	assert.Equal(t, types.Point{X: 1, Y: 3}, fm.GetFood())
}
