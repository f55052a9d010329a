package types

// Direction is a cardinal direction
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// Directions lists the four movable directions.
var Directions = [4]Direction{UP, RIGHT, DOWN, LEFT}

// Delta returns the unit vector of d. NONE has no movement.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case UP:
		return 0, -1
	case RIGHT:
		return 1, 0
	case DOWN:
		return 0, 1
	case LEFT:
		return -1, 0
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

// IsReverseOf reports whether d points exactly against other.
func (d Direction) IsReverseOf(other Direction) bool {
	return d != NONE && d == other.Reverse()
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
