package charutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidDirection is returned when a value is not one of the four travel directions.
var ErrInvalidDirection = errors.New("charutil: invalid direction")

// Direction represents movement direction.
// The zero value None stands for a character whose direction is not set yet.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four travel directions in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection converts "up", "down", "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Axis names the pixel coordinate a direction changes.
type Axis string

const (
	AxisTop  Axis = "top"
	AxisLeft Axis = "left"
)

// Other returns the cross axis.
func (a Axis) Other() Axis {
	if a == AxisTop {
		return AxisLeft
	}
	return AxisTop
}

// PropertyToChange returns the axis that moves when travelling in d.
// Anything but Up and Down, including None, maps to AxisLeft.
func PropertyToChange(d Direction) Axis {
	switch d {
	case Up, Down:
		return AxisTop
	default:
		return AxisLeft
	}
}

// Velocity returns magnitude signed for d: positive towards Down and Right,
// negative towards Up and Left.
func Velocity(d Direction, magnitude float64) (float64, error) {
	switch d {
	case Down, Right:
		return magnitude, nil
	case Up, Left:
		return -magnitude, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidDirection, d)
}

// Opposite returns the reverse of d. None and unknown values are returned as is.
func Opposite(d Direction) Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// RoundingFunc returns the rounding that moves a coordinate towards the tile
// boundary ahead: math.Floor for Up and Left, math.Ceil otherwise.
func RoundingFunc(d Direction) func(float64) float64 {
	switch d {
	case Up, Left:
		return math.Floor
	default:
		return math.Ceil
	}
}

// TurningAround reports whether desired reverses current.
func TurningAround(current, desired Direction) bool {
	return current.Valid() && desired == Opposite(current)
}
