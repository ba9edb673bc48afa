package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/tilestep/internal/charutil"
	"github.com/vinser/tilestep/internal/style"
)

// Page renders page with title at the top, content block and footer at the botttom
// Style of content leave intact
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	// Render top pattern of slashes
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))

	// Render the title
	renderedTitle := style.Title.Render(title)

	// Render the footer
	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)

	// Place content vertically centered within the available height
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	// Assemble the final page
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// CellWidth is the number of terminal columns a tile takes.
const CellWidth = 2

// Walker is what Maze draws at the walker's tile.
type Walker struct {
	Grid      charutil.GridPosition
	Direction charutil.Direction
	Visible   bool
	Blocked   bool
}

var walkerSprites = map[charutil.Direction]string{
	charutil.Up:    "^^",
	charutil.Down:  "vv",
	charutil.Left:  "<<",
	charutil.Right: ">>",
	charutil.None:  "()",
}

// Maze renders layout one tile per CellWidth columns, with w drawn on the tile it occupies.
// A hidden walker, or one in a tunnel outside the layout, is not drawn.
func Maze(layout charutil.Layout, w Walker) string {
	row, col := -1, -1
	if w.Visible && !math.IsNaN(w.Grid.X) && !math.IsNaN(w.Grid.Y) {
		row, col = int(math.Floor(w.Grid.Y)), int(math.Floor(w.Grid.X))
	}

	var sb strings.Builder
	for y, line := range layout {
		for x, r := range line {
			if y == row && x == col {
				sb.WriteString(renderWalker(w))
				continue
			}
			sb.WriteString(renderTile(layout, y, x, r))
		}
		if y < len(layout)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderWalker(w Walker) string {
	sprite, ok := walkerSprites[w.Direction]
	if !ok {
		sprite = walkerSprites[charutil.None]
	}
	if w.Blocked {
		return style.Blocked.Render(sprite)
	}
	return style.Walker.Render(sprite)
}

func renderTile(layout charutil.Layout, y, x int, r rune) string {
	switch {
	case r == charutil.WallTile:
		return style.Wall.Render(strings.Repeat("█", CellWidth))
	case isEdge(layout, y, x):
		return style.Tunnel.Render(strings.Repeat("·", CellWidth))
	case r == ' ':
		return style.Path.Render(strings.Repeat(" ", CellWidth))
	default:
		return style.Marker.Render(string(r) + strings.Repeat(" ", CellWidth-1))
	}
}

// isEdge reports whether an open tile lies on the outer border, where the
// walker can leave the layout.
func isEdge(layout charutil.Layout, y, x int) bool {
	return y == 0 || y == len(layout)-1 || x == 0 || x == len(layout[y])-1
}
