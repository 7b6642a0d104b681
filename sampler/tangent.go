package sampler

import (
	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/expr"
)

// slopeAt computes the central-difference derivative of f at x with the
// fixed step h = 1e-7. Non-finite neighbors propagate into a non-finite
// slope.
func slopeAt(f expr.Func, x float64, s core.Scope) float64 {
	s["x"] = x + derivativeStep
	ahead := safeCall(f, s)
	s["x"] = x - derivativeStep
	behind := safeCall(f, s)

	return (ahead - behind) / (2 * derivativeStep)
}

// SampleDerivative samples the numeric derivative f′ across
// [xMin, xMax] under the same spacing convention as SampleStandard,
// so the result plots like any standard curve. Complexity: O(N).
func SampleDerivative(f expr.Func, xMin, xMax float64, scope core.Scope, opts StandardOptions) []core.Point {
	if f == nil {
		return nil
	}
	n := opts.Samples
	if n <= 0 {
		n = DefaultStandardSamples
	}
	step := (xMax - xMin) / float64(n)
	s := scope.Clone(1)

	points := make([]core.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		x := xMin + float64(i)*step
		points = append(points, core.Point{X: x, Y: slopeAt(f, x, s)})
	}

	return points
}

// TangentAt computes the tangent line of f at anchor a, clipped to the
// viewport's x-extent, plus the contact point (a, f(a)). The second
// return is false — no tangent, not an error — when either the value or
// the slope at a is non-finite. Complexity: O(1) evaluations.
func TangentAt(f expr.Func, a float64, vp core.Viewport, scope core.Scope) (Tangent, bool) {
	if f == nil {
		return Tangent{}, false
	}
	s := scope.Clone(1)
	s["x"] = a
	value := safeCall(f, s)
	slope := slopeAt(f, a, s)
	if !core.IsFinite(value) || !core.IsFinite(slope) {
		return Tangent{}, false
	}

	lineAt := func(x float64) core.Point {
		return core.Point{X: x, Y: value + slope*(x-a)}
	}

	return Tangent{
		Start:   lineAt(vp.XMin),
		End:     lineAt(vp.XMax),
		Contact: core.Point{X: a, Y: value},
	}, true
}
