package entity

import (
	"snaker/game/types"

	"golang.org/x/exp/rand"
)

// Outcome is the result of a single Update.
type Outcome int

const (
	Alive Outcome = iota
	Dead
)

func (o Outcome) String() string {
	if o == Dead {
		return "dead"
	}
	return "alive"
}

// Snake holds the body head first. len(Body) never exceeds Length once an
// Update has completed.
type Snake struct {
	Body       []types.Point
	Direction  types.Direction
	Length     int
	Score      int
	Terminated bool

	grid types.Grid
	rng  *rand.Rand
}

// NewSnake creates a snake of length 1 in the center of grid, facing a random
// direction drawn from rng.
func NewSnake(grid types.Grid, rng *rand.Rand) *Snake {
	s := &Snake{grid: grid, rng: rng}
	s.Reset()
	return s
}

// Reset puts the snake back to its starting state.
func (s *Snake) Reset() {
	s.Length = 1
	s.Body = []types.Point{s.grid.Center()}
	s.Direction = types.Directions[s.rng.Intn(len(types.Directions))]
	s.Score = 0
	s.Terminated = false
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// SetDirection changes the heading unless dir is the exact reverse of the
// current one. Returns whether the change was applied.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.NONE || dir.IsReverseOf(s.Direction) {
		return false
	}
	s.Direction = dir
	return true
}

// Update advances the snake one cell. Running into any segment past the neck
// reports Dead and leaves the body untouched.
func (s *Snake) Update() Outcome {
	if s.Terminated {
		return Dead
	}

	newHead := s.grid.Step(s.GetHead(), s.Direction)
	if s.hits(newHead) {
		s.Terminated = true
		return Dead
	}

	s.Move(newHead)
	if len(s.Body) > s.Length {
		s.RemoveTail()
	}
	return Alive
}

// hits checks body[2:]; the head and the segment right behind it can't be
// reached in one step.
func (s *Snake) hits(p types.Point) bool {
	if len(s.Body) < 3 {
		return false
	}
	for _, part := range s.Body[2:] {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow raises the target length by one. The body catches up on the next
// Update by keeping its tail.
func (s *Snake) Grow() {
	s.Length++
}

// Eat grows the snake and scores a point.
func (s *Snake) Eat() {
	s.Grow()
	s.Score++
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
