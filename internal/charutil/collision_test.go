package charutil

import (
	"math"
	"testing"
)

var mazeLayout = Layout{
	[]rune("XXX"),
	[]rune("X  "),
	[]rune("X X"),
}

const scaledTileSize = 8

func TestDetermineGridPosition(t *testing.T) {
	tests := []struct {
		name string
		pos  PixelPosition
		want GridPosition
	}{
		{"origin", oldPosition, GridPosition{X: 0.5, Y: 0.5}},
		{"offset", position, GridPosition{X: 13, Y: 1.75}},
		{"negative", PixelPosition{Top: -12, Left: -4}, GridPosition{X: 0, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineGridPosition(tt.pos, scaledTileSize); got != tt.want {
				t.Errorf("DetermineGridPosition(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestChangingGridPosition(t *testing.T) {
	tests := []struct {
		name     string
		old, new GridPosition
		want     bool
	}{
		{"down one", GridPosition{0, 0}, GridPosition{0, 1}, true},
		{"right one", GridPosition{0, 0}, GridPosition{1, 0}, true},
		{"diagonal", GridPosition{0, 0}, GridPosition{1, 1}, true},
		{"below zero", GridPosition{0, 0}, GridPosition{-0.1, 0}, true},
		{"same", GridPosition{0, 0}, GridPosition{0, 0}, false},
		{"within tile", GridPosition{0, 0}, GridPosition{0.1, 0.9}, false},
		{"within tile 2", GridPosition{3.2, 7.9}, GridPosition{3.99, 7.01}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangingGridPosition(tt.old, tt.new); got != tt.want {
				t.Errorf("ChangingGridPosition(%v, %v) = %v, want %v", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestSnapToGrid(t *testing.T) {
	unsnapped := GridPosition{X: 1.5, Y: 1.5}
	tests := []struct {
		dir  Direction
		want PixelPosition
	}{
		{Up, PixelPosition{Top: 4, Left: 8}},
		{Down, PixelPosition{Top: 12, Left: 8}},
		{Left, PixelPosition{Top: 8, Left: 4}},
		{Right, PixelPosition{Top: 8, Left: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := SnapToGrid(unsnapped, tt.dir, scaledTileSize); got != tt.want {
				t.Errorf("SnapToGrid(%v, %v) = %v, want %v", unsnapped, tt.dir, got, tt.want)
			}
		})
	}
}

func TestSnapToGridKeepsSnappedPosition(t *testing.T) {
	grid := GridPosition{X: 3, Y: 2}
	for _, d := range Directions {
		got := DetermineGridPosition(SnapToGrid(grid, d, scaledTileSize), scaledTileSize)
		if got != grid {
			t.Errorf("snapping %v towards %v moved it to %v", grid, d, got)
		}
	}
}

func TestCheckForWallCollision(t *testing.T) {
	tests := []struct {
		name string
		grid GridPosition
		dir  Direction
		want bool
	}{
		{"left into wall", GridPosition{X: 0, Y: 1}, Left, true},
		{"up into wall", GridPosition{X: 1, Y: 0}, Up, true},
		{"down into wall", GridPosition{X: 2, Y: 1}, Down, true},
		{"right into wall", GridPosition{X: 1, Y: 2}, Right, true},
		{"right past edge", GridPosition{X: 2, Y: 1}, Right, false},
		{"down past edge", GridPosition{X: 1, Y: 2}, Down, false},
		{"left checks current", GridPosition{X: 1, Y: 1}, Left, false},
		{"up checks current", GridPosition{X: 1, Y: 1}, Up, false},
		{"right open", GridPosition{X: 1, Y: 1}, Right, false},
		{"down open", GridPosition{X: 1, Y: 1}, Down, false},
		{"fractional left", GridPosition{X: 0.9, Y: 1.2}, Left, true},
		{"fractional right", GridPosition{X: 1.1, Y: 1}, Right, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckForWallCollision(tt.grid, mazeLayout, tt.dir); got != tt.want {
				t.Errorf("CheckForWallCollision(%v, %v) = %v, want %v", tt.grid, tt.dir, got, tt.want)
			}
		})
	}
}

func TestCheckForWallCollisionOutsideMaze(t *testing.T) {
	outside := []GridPosition{
		{X: -1, Y: -1},
		{X: math.Inf(1), Y: math.Inf(1)},
		{X: math.Inf(-1), Y: 1},
		{X: math.NaN(), Y: 1},
		{X: 1, Y: 3},
		{X: 3, Y: 1},
		{X: -0.25, Y: 1},
	}
	for _, g := range outside {
		for _, d := range Directions {
			if CheckForWallCollision(g, mazeLayout, d) {
				t.Errorf("CheckForWallCollision(%v, %v) = true for a position outside the maze", g, d)
			}
		}
	}
}

func TestCheckForWallCollisionRaggedRows(t *testing.T) {
	ragged := Layout{
		[]rune("XXXXX"),
		[]rune(" "),
		[]rune("XX"),
	}
	if CheckForWallCollision(GridPosition{X: 3, Y: 1}, ragged, Up) {
		t.Errorf("column beyond a short row must count as outside the maze")
	}
	if !CheckForWallCollision(GridPosition{X: 0, Y: 1}, ragged, Down) {
		t.Errorf("expected wall at row 2 col 0")
	}
	if CheckForWallCollision(GridPosition{X: 0, Y: 1}, ragged, Right) {
		t.Errorf("missing tile at row 1 col 1 must be passable")
	}
	if CheckForWallCollision(GridPosition{X: 0, Y: 1}, ragged, Up) {
		t.Errorf("moving up checks the current open cell")
	}
}

func TestLayoutTile(t *testing.T) {
	if r, ok := mazeLayout.Tile(1, 1); !ok || r != ' ' {
		t.Errorf("Tile(1, 1) = %q, %v; want ' ', true", r, ok)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, ok := mazeLayout.Tile(rc[0], rc[1]); ok {
			t.Errorf("Tile(%d, %d) reported a tile outside the layout", rc[0], rc[1])
		}
	}
	if mazeLayout.Width() != 3 || mazeLayout.Height() != 3 {
		t.Errorf("size = %dx%d, want 3x3", mazeLayout.Width(), mazeLayout.Height())
	}
	if (Layout{}).Width() != 0 {
		t.Errorf("empty layout width should be 0")
	}
}
