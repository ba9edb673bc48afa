package dweller

import (
	"math"

	"github.com/vinser/tilestep/internal/charutil"
)

// snapEpsilon absorbs float noise when comparing a position with its snapped value.
const snapEpsilon = 1e-9

// Step describes what happened during one Update.
type Step struct {
	OldPosition charutil.PixelPosition
	Position    charutil.PixelPosition
	OldGrid     charutil.GridPosition
	Grid        charutil.GridPosition
	Direction   charutil.Direction
	Crossed     bool // entered a new tile
	Blocked     bool // stopped by a wall
	Turned      bool // changed direction
	Visibility  charutil.Visibility
}

// Walker is a single character moving through a layout, one tick at a time.
type Walker struct {
	layout        charutil.Layout
	tileSize      float64
	velocityPerMs float64

	position    charutil.PixelPosition
	oldPosition charutil.PixelPosition
	direction   charutil.Direction
	desired     charutil.Direction
	moving      bool
}

// NewWalker places a walker on the start tile, facing dir. speed is in pixels per second.
func NewWalker(layout charutil.Layout, tileSize float64, start charutil.GridPosition, dir charutil.Direction, speed float64) *Walker {
	pos := charutil.SnapToGrid(start, dir, tileSize)
	return &Walker{
		layout:        layout,
		tileSize:      tileSize,
		velocityPerMs: speed / 1000,
		position:      pos,
		oldPosition:   pos,
		direction:     dir,
		desired:       dir,
		moving:        true,
	}
}

// Pos returns the walker's current pixel position.
func (w *Walker) Pos() charutil.PixelPosition {
	return w.position
}

// OldPos returns the pixel position before the last Update.
func (w *Walker) OldPos() charutil.PixelPosition {
	return w.oldPosition
}

// Grid returns the walker's current grid position.
func (w *Walker) Grid() charutil.GridPosition {
	return charutil.DetermineGridPosition(w.position, w.tileSize)
}

// Dir returns the direction the walker is travelling in.
func (w *Walker) Dir() charutil.Direction {
	return w.direction
}

// Desired returns the direction the walker will take at the next opportunity.
func (w *Walker) Desired() charutil.Direction {
	return w.desired
}

// Moving reports whether the walker advanced on the last Update.
func (w *Walker) Moving() bool {
	return w.moving
}

// TileSize returns the tile size the walker was placed with.
func (w *Walker) TileSize() float64 {
	return w.tileSize
}

// Layout returns the layout the walker moves through.
func (w *Walker) Layout() charutil.Layout {
	return w.layout
}

// SetDesired queues a turn. Values other than the four directions are ignored.
func (w *Walker) SetDesired(d charutil.Direction) {
	if d.Valid() {
		w.desired = d
	}
}

// HandleInput updates the desired direction based on user input.
func (w *Walker) HandleInput(key string) {
	switch key {
	case "up", "w", "W":
		w.SetDesired(charutil.Up)
	case "down", "s", "S":
		w.SetDesired(charutil.Down)
	case "left", "a", "A":
		w.SetDesired(charutil.Left)
	case "right", "d", "D":
		w.SetDesired(charutil.Right)
	}
}

// DrawPosition returns the position to draw at, interp of the way from the
// previous tick to the current one.
func (w *Walker) DrawPosition(interp float64) charutil.PixelPosition {
	return charutil.PixelPosition{
		Top:  charutil.CalculateNewDrawValue(interp, charutil.AxisTop, w.oldPosition, w.position),
		Left: charutil.CalculateNewDrawValue(interp, charutil.AxisLeft, w.oldPosition, w.position),
	}
}

// Update advances the walker by elapsedMs.
func (w *Walker) Update(elapsedMs float64) Step {
	w.oldPosition = w.position
	before := w.direction
	grid := charutil.DetermineGridPosition(w.position, w.tileSize)

	var next charutil.PixelPosition
	snapped := w.snapped(grid)
	switch {
	case !snapped && charutil.TurningAround(w.direction, w.desired):
		// Mid-tile the way back is always open.
		w.direction = w.desired
		w.moving = true
		next = charutil.NewPosition(w.position, w.direction, w.velocityPerMs, elapsedMs)
	case snapped:
		next = w.snappedMove(elapsedMs)
	default:
		next = w.unsnappedMove(grid, elapsedMs)
	}
	w.position = charutil.HandleWarp(next, w.tileSize, w.layout)

	newGrid := charutil.DetermineGridPosition(w.position, w.tileSize)
	return Step{
		OldPosition: w.oldPosition,
		Position:    w.position,
		OldGrid:     grid,
		Grid:        newGrid,
		Direction:   w.direction,
		Crossed:     charutil.ChangingGridPosition(grid, newGrid),
		Blocked:     !w.moving,
		Turned:      w.direction != before,
		Visibility:  charutil.CheckForStutter(&w.oldPosition, &w.position),
	}
}

func (w *Walker) snapped(grid charutil.GridPosition) bool {
	s := charutil.SnapToGrid(grid, w.direction, w.tileSize)
	return math.Abs(s.Top-w.position.Top) < snapEpsilon && math.Abs(s.Left-w.position.Left) < snapEpsilon
}

// snappedMove runs on a tile boundary: take the desired direction if it is
// open, else carry on if that is open, else stop.
func (w *Walker) snappedMove(elapsedMs float64) charutil.PixelPosition {
	desiredPos, desiredGrid := charutil.DetermineNewPositions(w.position, w.desired, w.velocityPerMs, elapsedMs, w.tileSize)
	if !charutil.CheckForWallCollision(desiredGrid, w.layout, w.desired) {
		w.direction = w.desired
		w.moving = true
		return desiredPos
	}
	pos, grid := charutil.DetermineNewPositions(w.position, w.direction, w.velocityPerMs, elapsedMs, w.tileSize)
	if !charutil.CheckForWallCollision(grid, w.layout, w.direction) {
		w.moving = true
		return pos
	}
	w.moving = false
	return w.position
}

// unsnappedMove keeps going and stops on the boundary of the next tile.
func (w *Walker) unsnappedMove(grid charutil.GridPosition, elapsedMs float64) charutil.PixelPosition {
	w.moving = true
	pos, newGrid := charutil.DetermineNewPositions(w.position, w.direction, w.velocityPerMs, elapsedMs, w.tileSize)
	if charutil.ChangingGridPosition(grid, newGrid) {
		return charutil.SnapToGrid(grid, w.direction, w.tileSize)
	}
	return pos
}
