package world

import (
	"strings"

	"github.com/jboenig/AdventureGame/engine/grid"
)

// Board is the grid of tiles the game is played on. A new board is
// solid wall; carve rooms into it with SetTile.
type Board struct {
	rows, cols int
	start      grid.Position
	tiles      [][]Tile
}

// NewBoard creates a board of the given dimensions filled with walls.
func NewBoard(rows, cols int, start grid.Position) *Board {
	tiles := make([][]Tile, rows)
	for i := range tiles {
		tiles[i] = make([]Tile, cols)
		for j := range tiles[i] {
			tiles[i][j] = Wall{}
		}
	}
	return &Board{rows: rows, cols: cols, start: start, tiles: tiles}
}

func (b *Board) Rows() int            { return b.rows }
func (b *Board) Cols() int            { return b.cols }
func (b *Board) Start() grid.Position { return b.start }

// Entry returns the tile at the position, or nil when the position is
// off the board.
func (b *Board) Entry(pos grid.Position) Tile {
	if !b.IsValid(pos) {
		return nil
	}
	return b.tiles[pos.Row][pos.Col]
}

// IsValid reports whether the position lies on the board.
func (b *Board) IsValid(pos grid.Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// SetTile replaces the tile at the position. Out of range positions
// are ignored.
func (b *Board) SetTile(pos grid.Position, t Tile) {
	if !b.IsValid(pos) {
		return
	}
	b.tiles[pos.Row][pos.Col] = t
}

// RoomAt returns the room at the position, or nil for walls and
// off-board positions.
func (b *Board) RoomAt(pos grid.Position) *Room {
	r, _ := b.Entry(pos).(*Room)
	return r
}

// Rooms returns every room on the board in row-major order.
func (b *Board) Rooms() []*Room {
	var out []*Room
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			if r, ok := b.tiles[i][j].(*Room); ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// Render draws the map with the player marked by @. Rooms holding a
// portal show as ?.
func (b *Board) Render(playerPos grid.Position) string {
	var sb strings.Builder
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			if i == playerPos.Row && j == playerPos.Col {
				sb.WriteString("@ ")
			} else {
				sb.WriteString(b.tiles[i][j].Glyph())
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
