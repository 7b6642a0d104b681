// Package core defines the shared value types for the curveplot engine.
package core

import "math"

// Point is a world-space coordinate pair. Either coordinate may be
// non-finite (NaN or ±Inf), in which case the point is a sentinel that
// marks "not plottable here" — renderers lift the pen instead of
// connecting through it.
type Point struct {
	X, Y float64
}

// Segment is an ordered pair of points, produced by implicit-curve
// tessellation. Segments are independent: no ordering or polyline
// stitching is implied.
type Segment struct {
	A, B Point
}

// Viewport is the visible window in world coordinates.
// Callers must keep XMin < XMax and YMin < YMax; degenerate viewports
// are not validated here — the resulting division-based math simply
// yields non-finite, unplottable points.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax - XMin. Complexity: O(1).
func (v Viewport) Width() float64 { return v.XMax - v.XMin }

// Height returns YMax - YMin. Complexity: O(1).
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

// Scope maps parameter names (slider variables) to their current values.
// The zero value (nil) is a valid empty scope. Coordinate variables
// (x, y, t, theta) must never be pre-supplied by callers; the sampler
// injects them per sample.
type Scope map[string]float64

// Clone returns an independent copy of the scope with room for extra
// entries, so samplers can inject coordinates without mutating the
// caller's map. Complexity: O(len(s)).
func (s Scope) Clone(extra int) Scope {
	out := make(Scope, len(s)+extra)
	for k, v := range s {
		out[k] = v
	}

	return out
}

// IsFinite reports whether v is a plottable number (neither NaN nor ±Inf).
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Unplottable is the canonical sentinel value for a sample that has no
// finite result.
func Unplottable() float64 { return math.NaN() }

// Plottable reports whether both coordinates of p are finite.
func (p Point) Plottable() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// SentinelPoint returns a point whose coordinates are both non-finite,
// signaling a discontinuity to the renderer.
func SentinelPoint() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}
