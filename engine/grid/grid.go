// Package grid defines the board coordinate primitives shared by the
// world model, entities, and the game interpreter.
package grid

import "fmt"

// Position is an immutable (row, column) pair on the board grid.
// Negative coordinates are the "undefined" sentinel: the position is
// outside the world, either because the player has not entered yet or
// because they have escaped through a portal.
type Position struct {
	Row int
	Col int
}

// Undefined is the out-of-world sentinel position.
var Undefined = Position{Row: -1, Col: -1}

// At creates a position at the given row and column.
func At(row, col int) Position {
	return Position{Row: row, Col: col}
}

// IsUndefined reports whether the position is outside the world.
func (p Position) IsUndefined() bool {
	return p.Row < 0 || p.Col < 0
}

// Forward is one step north (rows decrease going forward).
func (p Position) Forward() Position {
	return Position{Row: p.Row - 1, Col: p.Col}
}

// Back is one step south.
func (p Position) Back() Position {
	return Position{Row: p.Row + 1, Col: p.Col}
}

// Left is one step west (columns decrease going left).
func (p Position) Left() Position {
	return Position{Row: p.Row, Col: p.Col - 1}
}

// Right is one step east.
func (p Position) Right() Position {
	return Position{Row: p.Row, Col: p.Col + 1}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}
