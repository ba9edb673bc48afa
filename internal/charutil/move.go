package charutil

// NewPosition advances pos along the travel axis of d by velocityPerMs*elapsedMs.
// pos is returned unchanged when d is not a travel direction.
func NewPosition(pos PixelPosition, d Direction, velocityPerMs, elapsedMs float64) PixelPosition {
	v, err := Velocity(d, velocityPerMs)
	if err != nil {
		return pos
	}
	axis := PropertyToChange(d)
	return pos.With(axis, pos.Get(axis)+v*elapsedMs)
}

// DetermineNewPositions returns where pos ends up after elapsedMs of travel in d,
// both in pixels and in grid coordinates.
func DetermineNewPositions(pos PixelPosition, d Direction, velocityPerMs, elapsedMs, tileSize float64) (PixelPosition, GridPosition) {
	next := NewPosition(pos, d, velocityPerMs, elapsedMs)
	return next, DetermineGridPosition(next, tileSize)
}

// HandleWarp moves a character that has left the layout through a tunnel to
// the opposite edge. Positions within the layout are returned as is.
func HandleWarp(pos PixelPosition, tileSize float64, layout Layout) PixelPosition {
	grid := DetermineGridPosition(pos, tileSize)
	width := float64(layout.Width())
	height := float64(layout.Height())

	switch {
	case grid.X < -0.75:
		pos.Left = tileSize * (width - 0.75)
	case grid.X > width-0.25:
		pos.Left = tileSize * -1.25
	}
	switch {
	case grid.Y < -0.75:
		pos.Top = tileSize * (height - 0.75)
	case grid.Y > height-0.25:
		pos.Top = tileSize * -1.25
	}
	return pos
}
