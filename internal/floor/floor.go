package floor

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vinser/maze"
	"github.com/vinser/tilestep/internal/charutil"
)

// ErrEmptyLayout is returned when a maze description has no rows.
var ErrEmptyLayout = errors.New("floor: empty layout")

// Layout symbols besides charutil.WallTile.
const (
	Path  = ' '
	Start = 'S'
	End   = 'E'
)

const (
	// Generated maze settings
	Width  = 21
	Height = 15
	// Ghosts' den size, kept open in the middle of generated mazes
	DenWidth  = 5
	DenHeight = 3
	// Bias defines maze complexity
	Bias = 0.2
)

// Floor is a maze ready for the walker: its layout and where to start.
type Floor struct {
	Index  int
	Seed   int64
	Source string // file path, or empty for generated floors
	Layout charutil.Layout
	start  charutil.GridPosition
}

// Width returns the length of the first layout row.
func (f *Floor) Width() int {
	return f.Layout.Width()
}

// Height returns the number of layout rows.
func (f *Floor) Height() int {
	return f.Layout.Height()
}

// Start returns the grid position a walker is placed on.
func (f *Floor) Start() charutil.GridPosition {
	return f.start
}

// Parse turns text rows into a layout. '#' is accepted as a wall as well as 'X'.
// Short rows are padded with walls to the widest row, so tunnel wrapping sees
// one width for every row.
func Parse(lines []string) (charutil.Layout, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}
	layout := make(charutil.Layout, len(lines))
	width := 0
	for y, line := range lines {
		row := []rune(strings.TrimRight(line, "\r"))
		for x, r := range row {
			if r == '#' {
				row[x] = charutil.WallTile
			}
		}
		layout[y] = row
		width = max(width, len(row))
	}
	for y, row := range layout {
		for len(row) < width {
			row = append(row, charutil.WallTile)
		}
		layout[y] = row
	}
	return layout, nil
}

// Load reads a layout from a text file, one maze row per line.
func Load(path string) (*Floor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("floor: open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("floor: read %s: %w", path, err)
	}
	layout, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("floor: %s: %w", path, err)
	}
	return FromLayout(layout, path), nil
}

// FromLayout wraps an existing layout. The start is the 'S' tile if there is
// one, otherwise the first open tile in reading order.
func FromLayout(layout charutil.Layout, source string) *Floor {
	f := &Floor{Source: source, Layout: layout}
	f.start = findStart(layout)
	return f
}

// Generate builds a floor from a seeded maze. If no seed is provided, the
// result is deterministic for a given index.
func Generate(index int, seed int64) (*Floor, error) {
	if seed == 0 {
		seed = int64(index)
	}
	m, err := maze.New(Width, Height, DenWidth, DenHeight)
	if err != nil {
		return nil, fmt.Errorf("floor: new maze: %w", err)
	}
	m.Generate(seed, nil, nil, nil, "top", Bias)
	if _, ok := m.Solve(); !ok {
		return nil, fmt.Errorf("floor: no solution for width=%d, height=%d, denWidth=%d, denHeight=%d, seed=%d", Width, Height, DenWidth, DenHeight, seed)
	}

	layout := newLayout(m)
	start := sealBorder(layout, m.Start())
	sealBorder(layout, m.End())
	openTunnel(layout)
	return &Floor{
		Index:  index,
		Seed:   seed,
		Layout: layout,
		start:  charutil.GridPosition{X: float64(start.X), Y: float64(start.Y)},
	}, nil
}

func findStart(layout charutil.Layout) charutil.GridPosition {
	first := charutil.GridPosition{}
	found := false
	for y, row := range layout {
		for x, r := range row {
			if r == Start {
				return charutil.GridPosition{X: float64(x), Y: float64(y)}
			}
			if !found && r != charutil.WallTile {
				first = charutil.GridPosition{X: float64(x), Y: float64(y)}
				found = true
			}
		}
	}
	return first
}
