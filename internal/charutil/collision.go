package charutil

import "math"

// WallTile is the only impassable symbol of a Layout.
const WallTile = 'X'

// Layout is a maze as rows of single-symbol tiles. Rows may differ in length.
type Layout [][]rune

// Tile returns the symbol at row, col. ok is false when the cell does not exist.
func (l Layout) Tile(row, col int) (r rune, ok bool) {
	if row < 0 || row >= len(l) || col < 0 || col >= len(l[row]) {
		return 0, false
	}
	return l[row][col], true
}

// IsWall reports whether the cell at row, col holds a wall. Missing cells are not walls.
func (l Layout) IsWall(row, col int) bool {
	t, ok := l.Tile(row, col)
	return ok && t == WallTile
}

// Width returns the length of the first row.
func (l Layout) Width() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// Height returns the number of rows.
func (l Layout) Height() int {
	return len(l)
}

// cell returns the tile index containing grid coordinate v.
func cell(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int(math.Floor(v)), true
}

// CheckForWallCollision reports whether moving in d from grid runs into a wall.
//
// Moving up or left checks the cell the position is in; moving down or right
// checks the next cell along the travel axis. A position that is already off
// the layout is in a tunnel and never collides, and neither does a target cell
// past the stored extent of the layout.
func CheckForWallCollision(grid GridPosition, layout Layout, d Direction) bool {
	row, okRow := cell(grid.Y)
	col, okCol := cell(grid.X)
	if !okRow || !okCol {
		return false
	}
	if _, ok := layout.Tile(row, col); !ok {
		return false
	}

	offset := 0
	if d == Down || d == Right {
		offset = 1
	}
	switch d {
	case Up, Down:
		row += offset
	case Left, Right:
		col += offset
	}
	return layout.IsWall(row, col)
}
