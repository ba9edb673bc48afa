package floor

import (
	"github.com/vinser/maze"
	"github.com/vinser/tilestep/internal/charutil"
)

// newLayout copies the cells of m into a layout.
func newLayout(m *maze.Maze) charutil.Layout {
	layout := make(charutil.Layout, m.Height())
	for y := 0; y < m.Height(); y++ {
		layout[y] = make([]rune, m.Width())
		for x := 0; x < m.Width(); x++ {
			cell, ok := m.Cell(x, y)
			if !ok {
				layout[y][x] = charutil.WallTile
				continue
			}
			switch cell {
			case maze.Path:
				layout[y][x] = Path
			case maze.Start:
				layout[y][x] = Start
			case maze.End:
				layout[y][x] = End
			default:
				layout[y][x] = charutil.WallTile
			}
		}
	}
	return layout
}

// sealBorder walls up a border opening at p and returns the open cell just
// inside it. Points off the border are returned unchanged.
func sealBorder(layout charutil.Layout, p maze.Point) maze.Point {
	h := len(layout)
	if h == 0 || p.Y < 0 || p.Y >= h || p.X < 0 || p.X >= len(layout[p.Y]) {
		return p
	}
	w := len(layout[p.Y])
	inner := p
	switch {
	case p.Y == 0:
		inner.Y++
	case p.Y == h-1:
		inner.Y--
	case p.X == 0:
		inner.X++
	case p.X == w-1:
		inner.X--
	default:
		return p
	}
	layout[p.Y][p.X] = charutil.WallTile
	return inner
}

// openTunnel clears both outer walls of the row nearest to the middle whose
// inner cells are open, so that the row wraps around.
func openTunnel(layout charutil.Layout) {
	row, ok := tunnelRow(layout)
	if !ok {
		return
	}
	layout[row][0] = Path
	layout[row][len(layout[row])-1] = Path
}

func tunnelRow(layout charutil.Layout) (int, bool) {
	mid := len(layout) / 2
	for d := 0; d <= mid; d++ {
		for _, y := range []int{mid - d, mid + d} {
			if y <= 0 || y >= len(layout)-1 || len(layout[y]) < 3 {
				continue
			}
			last := len(layout[y]) - 1
			if !layout.IsWall(y, 1) && !layout.IsWall(y, last-1) {
				return y, true
			}
		}
	}
	return 0, false
}
