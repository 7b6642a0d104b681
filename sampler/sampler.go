package sampler

import (
	"math"

	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/expr"
)

// safeCall evaluates f and absorbs any internal fault: a nil callable
// or a panic inside a custom Func yields NaN instead of aborting the
// sampling loop. Compiled expressions never panic, so the recover is a
// containment boundary for foreign Func implementations.
func safeCall(f expr.Func, scope core.Scope) (v float64) {
	if f == nil {
		return math.NaN()
	}
	defer func() {
		if recover() != nil {
			v = math.NaN()
		}
	}()

	return f(scope)
}

// EvalAt evaluates f with the named coordinate bound to value on top of
// the caller's scope. The caller's map is never mutated. The result may
// be non-finite — that is the sentinel, not an error. Complexity: O(len(scope)).
func EvalAt(f expr.Func, coord string, value float64, scope core.Scope) float64 {
	s := scope.Clone(1)
	s[coord] = value

	return safeCall(f, s)
}

// SampleStandard emits opts.Samples+1 equally spaced points of
// (x, f(x)) over [xMin, xMax]. Unplottable samples keep their x and
// carry a non-finite y, preserving discontinuity positions for the
// renderer. A nil callable yields an empty slice. Complexity: O(N).
func SampleStandard(f expr.Func, xMin, xMax float64, scope core.Scope, opts StandardOptions) []core.Point {
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
		s["x"] = x
		points = append(points, core.Point{X: x, Y: safeCall(f, s)})
	}

	return points
}

// SamplePolar evaluates r(θ) across the angle range and maps each
// sample to Cartesian via (r·cosθ, r·sinθ). Non-finite radii emit a
// full sentinel point at that index rather than being skipped, so the
// output length is always Samples+1 and discontinuities stay visible.
// Complexity: O(N).
func SamplePolar(f expr.Func, scope core.Scope, opts PolarOptions) []core.Point {
	if f == nil {
		return nil
	}
	n := opts.Samples
	if n <= 0 {
		n = DefaultPolarSamples
	}
	lo, hi := opts.ThetaMin, opts.ThetaMax
	if lo == hi {
		lo, hi = 0, DefaultThetaMax
	}
	step := (hi - lo) / float64(n)
	s := scope.Clone(1)

	points := make([]core.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := lo + float64(i)*step
		s["theta"] = theta
		r := safeCall(f, s)
		if !core.IsFinite(r) {
			points = append(points, core.SentinelPoint())
			continue
		}
		points = append(points, core.Point{
			X: r * math.Cos(theta),
			Y: r * math.Sin(theta),
		})
	}

	return points
}

// SampleParametric evaluates the two coordinate callables independently
// at each t. Either coordinate may come out non-finite, marking the
// point unplottable. Complexity: O(N).
func SampleParametric(fx, fy expr.Func, scope core.Scope, opts ParametricOptions) []core.Point {
	if fx == nil || fy == nil {
		return nil
	}
	n := opts.Samples
	if n <= 0 {
		n = DefaultParametricSamples
	}
	lo, hi := opts.TMin, opts.TMax
	if lo == hi {
		lo, hi = DefaultParamMin, DefaultParamMax
	}
	step := (hi - lo) / float64(n)
	s := scope.Clone(1)

	points := make([]core.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := lo + float64(i)*step
		s["t"] = t
		points = append(points, core.Point{X: safeCall(fx, s), Y: safeCall(fy, s)})
	}

	return points
}

// Table evaluates f at each given coordinate value and returns the
// (value, f(value)) rows, for tabular consumers. Complexity: O(len(xs)).
func Table(f expr.Func, coord string, xs []float64, scope core.Scope) []core.Point {
	if f == nil {
		return nil
	}
	s := scope.Clone(1)
	rows := make([]core.Point, 0, len(xs))
	for _, x := range xs {
		s[coord] = x
		rows = append(rows, core.Point{X: x, Y: safeCall(f, s)})
	}

	return rows
}
