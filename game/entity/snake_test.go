package entity

import (
	"testing"

	"snaker/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestSnake(t *testing.T, grid types.Grid) *Snake {
	t.Helper()
	return NewSnake(grid, rand.New(rand.NewSource(1)))
}

func TestNewSnakeStartsInCenter(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	s := newTestSnake(t, grid)

	assert.Equal(t, []types.Point{{X: 5, Y: 5}}, s.Body)
	assert.Equal(t, 1, s.Length)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.Terminated)
	assert.Contains(t, types.Directions[:], s.Direction)
}

func TestResetRestoresStartingState(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	s := newTestSnake(t, grid)
	s.Body = []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	s.Length = 7
	s.Score = 6
	s.Terminated = true

	s.Reset()

	assert.Equal(t, []types.Point{{X: 5, Y: 5}}, s.Body)
	assert.Equal(t, 1, s.Length)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.Terminated)
}

func TestSetDirectionRejectsOnlyReverse(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	for _, current := range types.Directions {
		for _, next := range types.Directions {
			s.Direction = current
			applied := s.SetDirection(next)
			if next == current.Reverse() {
				assert.False(t, applied, "%s -> %s", current, next)
				assert.Equal(t, current, s.Direction)
			} else {
				assert.True(t, applied, "%s -> %s", current, next)
				assert.Equal(t, next, s.Direction)
			}
		}
	}
}

func TestUpdateWrapsOffRightEdge(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	s.Body = []types.Point{{X: 9, Y: 4}}
	s.Direction = types.RIGHT

	require.Equal(t, Alive, s.Update())
	assert.Equal(t, types.Point{X: 0, Y: 4}, s.GetHead())
}

func TestUpdateKeepsBodyAtLength(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	s.Body = []types.Point{{X: 5, Y: 5}}
	s.Direction = types.RIGHT

	s.Grow()
	require.Equal(t, Alive, s.Update())
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body)

	require.Equal(t, Alive, s.Update())
	assert.Equal(t, []types.Point{{X: 7, Y: 5}, {X: 6, Y: 5}}, s.Body)
	assert.Len(t, s.Body, s.Length)
}

func TestEatIncrementsLengthAndScore(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	s.Eat()
	assert.Equal(t, 2, s.Length)
	assert.Equal(t, 1, s.Score)
}

func TestUpdateSelfCollision(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	// A 2x2 loop: turning right runs into the tail segment.
	body := []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	s.Body = append([]types.Point(nil), body...)
	s.Length = 4
	s.Direction = types.RIGHT

	assert.Equal(t, Dead, s.Update())
	assert.True(t, s.Terminated)
	assert.Equal(t, body, s.Body, "a fatal move must not mutate the body")

	// Terminated snakes refuse further updates until reset.
	s.Direction = types.UP
	assert.Equal(t, Dead, s.Update())
	assert.Equal(t, body, s.Body)
}

func TestUpdateNeverDiesBelowThreeSegments(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	for _, d := range types.Directions {
		s.Body = []types.Point{{X: 4, Y: 4}, types.Point{X: 4, Y: 4}.Add(d)}
		s.Length = 2
		s.Terminated = false
		// Force a move onto the neck; SetDirection would refuse it.
		s.Direction = d
		assert.Equal(t, Alive, s.Update(), "direction %s", d)
	}
}

func TestUpdateLengthFiveLoop(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	s.Body = []types.Point{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 2}}
	s.Length = 5
	s.Direction = types.RIGHT

	assert.Equal(t, Dead, s.Update())
}

func TestOccupies(t *testing.T) {
	s := newTestSnake(t, types.Grid{Width: 10, Height: 10})
	s.Body = []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	assert.True(t, s.Occupies(types.Point{X: 1, Y: 2}))
	assert.False(t, s.Occupies(types.Point{X: 2, Y: 2}))
}
