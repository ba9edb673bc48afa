package charutil

import "math"

// PixelPosition is the top-left anchor of a character sprite, in pixels.
type PixelPosition struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Get returns the coordinate on axis a.
func (p PixelPosition) Get(a Axis) float64 {
	if a == AxisTop {
		return p.Top
	}
	return p.Left
}

// With returns a copy of p with the coordinate on axis a replaced by v.
func (p PixelPosition) With(a Axis, v float64) PixelPosition {
	if a == AxisTop {
		p.Top = v
	} else {
		p.Left = v
	}
	return p
}

// GridPosition is a position in tile units. A character whose anchor sits on
// tile column N has X == N+0.5.
type GridPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// on returns the grid value along the pixel axis a (Top is Y, Left is X).
func (g GridPosition) on(a Axis) float64 {
	if a == AxisTop {
		return g.Y
	}
	return g.X
}

// DetermineGridPosition converts a pixel position into grid coordinates.
func DetermineGridPosition(pos PixelPosition, tileSize float64) GridPosition {
	return GridPosition{
		X: pos.Left/tileSize + 0.5,
		Y: pos.Top/tileSize + 0.5,
	}
}

// ChangingGridPosition reports whether moving from old to new enters a different tile.
func ChangingGridPosition(old, new GridPosition) bool {
	return math.Floor(old.X) != math.Floor(new.X) ||
		math.Floor(old.Y) != math.Floor(new.Y)
}

// SnapToGrid aligns the travel axis of d to the tile boundary ahead and keeps
// the cross axis where it is.
func SnapToGrid(grid GridPosition, d Direction, tileSize float64) PixelPosition {
	axis := PropertyToChange(d)
	round := RoundingFunc(d)
	travel := (round(grid.on(axis)) - 0.5) * tileSize
	cross := (grid.on(axis.Other()) - 0.5) * tileSize
	return PixelPosition{}.With(axis, travel).With(axis.Other(), cross)
}
