// Package grid provides the bounded cell coordinate model shared by the engine and its drivers
package grid

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/snake-chase/constants"
)

// Direction is the travel direction of a trail segment
type Direction uint8

const (
	None Direction = iota // No input received yet
	Up
	Down
	Left
	Right
)

// Opposite returns the reverse direction, None has no opposite
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Position is a cell coordinate with X in [0, GridWidth) and Y in [0, GridHeight)
type Position struct {
	X, Y uint8
}

// Random samples a position uniformly over the whole grid, occupied cells included
func Random(r *rand.Rand) Position {
	return Position{
		X: uint8(r.IntN(int(constants.GridWidth))),
		Y: uint8(r.IntN(int(constants.GridHeight))),
	}
}

// Move returns the position one cell in direction d, clamped to the grid edge
func (p Position) Move(d Direction) Position {
	switch d {
	case Up:
		p.Y = decClamp(p.Y)
	case Down:
		p.Y = incClamp(p.Y, constants.GridHeight)
	case Left:
		p.X = decClamp(p.X)
	case Right:
		p.X = incClamp(p.X, constants.GridWidth)
	}
	return p
}

// Behind returns the cell one step against direction d, clamped to the grid edge
// Used to place a new tail segment behind a tail travelling in d
func (p Position) Behind(d Direction) Position {
	return p.Move(d.Opposite())
}

// InBounds reports whether p lies inside the grid
func InBounds(p Position) bool {
	return p.X < constants.GridWidth && p.Y < constants.GridHeight
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func decClamp(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return v - 1
}

func incClamp(v, limit uint8) uint8 {
	if v >= limit-1 {
		return limit - 1
	}
	return v + 1
}
