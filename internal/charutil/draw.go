package charutil

import "math"

// Visibility tells the renderer whether to draw a character this frame.
type Visibility string

const (
	Visible Visibility = "visible"
	Hidden  Visibility = "hidden"
)

// DefaultStutterThreshold is the largest per-frame move, in pixels, drawn as motion.
const DefaultStutterThreshold = 5

// CheckForStutter hides a character that jumped more than DefaultStutterThreshold
// pixels on either axis since the last frame, e.g. through a tunnel.
func CheckForStutter(old, new *PixelPosition) Visibility {
	return CheckForStutterThreshold(old, new, DefaultStutterThreshold)
}

// CheckForStutterThreshold is CheckForStutter with a custom threshold.
// Missing positions are always visible.
func CheckForStutterThreshold(old, new *PixelPosition, threshold float64) Visibility {
	if old == nil || new == nil {
		return Visible
	}
	if math.Abs(new.Top-old.Top) > threshold || math.Abs(new.Left-old.Left) > threshold {
		return Hidden
	}
	return Visible
}

// CalculateNewDrawValue blends the axis coordinate of two consecutive tick
// positions. interp is the fraction of the tick elapsed at render time.
func CalculateNewDrawValue(interp float64, axis Axis, old, new PixelPosition) float64 {
	from := old.Get(axis)
	return from + (new.Get(axis)-from)*interp
}
