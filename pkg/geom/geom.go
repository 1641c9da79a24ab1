// Package geom implements the frame-containment geometry for compositions.
//
// All items live in the coordinate space of a single Frame, a fixed-size
// rectangle with the origin at the top-left corner. The engine's job is to
// keep item rectangles fully inside the frame and above a minimum size.
//
// Coordinates and sizes are real numbers: positions may be fractional while
// a drag is in flight. Clamping is a pure value transformation; the engine
// never errors and never mutates its inputs.
//
// # Containment policy
//
// ClampToFrame constrains a rectangle's top-left corner to
// [0, frame - size] on each axis. A rectangle larger than the frame has no
// valid position; callers enforce a maximum creation size of 0.8x the frame
// dimension (see FitWithin), which keeps that case out of reach. The engine
// itself does not guard against it.
package geom

import "math"

// Minimum item dimensions, in frame pixels.
const (
	// MinItemSize is the floor for item width and height after any resize.
	MinItemSize = 32

	// MinProportionalSize is the floor used for proportional resize
	// gestures, where both axes scale together.
	MinProportionalSize = 48
)

// MaxCreationRatio caps the size of newly created items relative to the
// frame. Creation paths scale sources down so that both dimensions fit
// within this share of the frame.
const MaxCreationRatio = 0.8

// Frame is the fixed output rectangle all items are composed within.
// Dimensions are positive and immutable for the lifetime of a session.
type Frame struct {
	Width  float64
	Height float64
}

// DefaultFrame matches the original export resolution of the editor.
var DefaultFrame = Frame{Width: 1536, Height: 1024}

// Rect is an axis-aligned rectangle positioned by its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Clamp constrains v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ClampToFrame returns r with its position corrected so the rectangle lies
// fully inside f. The size is never changed. The operation is idempotent:
// clamping an already-contained rectangle returns it unchanged.
//
// If r is larger than f on an axis the result still protrudes; there is no
// valid position for it. Creation-time sizing (FitWithin, MaxCreationRatio)
// is the only safeguard against that case.
func ClampToFrame(r Rect, f Frame) Rect {
	maxX := f.Width - r.Width
	maxY := f.Height - r.Height
	r.X = Clamp(r.X, 0, maxX)
	r.Y = Clamp(r.Y, 0, maxY)
	return r
}

// ApplyResize returns r resized to width x height, floored at floor on both
// axes, anchored at its current top-left corner, and re-clamped into f.
// Pass MinItemSize for direct resizes or MinProportionalSize for
// proportional gestures. A non-positive floor falls back to MinItemSize.
//
// Aspect ratio is not enforced here: callers wanting a locked ratio must
// supply width and height already in proportion.
func ApplyResize(r Rect, width, height, floor float64, f Frame) Rect {
	if floor <= 0 {
		floor = MinItemSize
	}
	r.Width = math.Max(floor, width)
	r.Height = math.Max(floor, height)
	return ClampToFrame(r, f)
}

// Contains reports whether r lies fully inside f, within tolerance eps.
func Contains(r Rect, f Frame, eps float64) bool {
	return r.X >= -eps && r.Y >= -eps &&
		r.Right() <= f.Width+eps && r.Bottom() <= f.Height+eps
}

// FitWithin scales source dimensions to fit inside maxW x maxH without
// upscaling, then floors both results at floor. This is the creation-size
// policy for pixel media: callers pass frame*MaxCreationRatio as the
// maximums so new items always have a valid position.
func FitWithin(srcW, srcH, maxW, maxH, floor float64) (w, h float64) {
	if srcW <= 0 || srcH <= 0 {
		return floor, floor
	}
	ratio := math.Min(math.Min(maxW/srcW, maxH/srcH), 1)
	w = math.Max(floor, srcW*ratio)
	h = math.Max(floor, srcH*ratio)
	return w, h
}

// Centered returns the top-left position that centers a width x height
// rectangle inside f.
func Centered(f Frame, width, height float64) (x, y float64) {
	return (f.Width - width) / 2, (f.Height - height) / 2
}
