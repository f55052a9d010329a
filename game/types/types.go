package types

import "fmt"

// Grid represents the game grid dimensions. Movement wraps around every edge.
type Grid struct {
	Width  int
	Height int
}

// Point is a single grid cell
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved by one step in direction d, without wrapping.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Wrap folds p back onto the grid using non-negative modulo on both axes.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Step moves p one cell in direction d, wrapping around the edges.
func (g Grid) Step(p Point, d Direction) Point {
	return g.Wrap(p.Add(d))
}

// Contains reports whether p lies inside [0,Width) x [0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell the snake starts from.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
