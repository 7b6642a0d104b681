package roots

import (
	"math"

	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/expr"
	"github.com/isam10/curveplot/sampler"
)

// FindRoots scans [vp.XMin, vp.XMax] for sign changes of f and bisects
// each bracket to a zero. Recorded roots sit on the x axis: (x, 0).
// A nil callable (errored expression) yields no roots.
// Complexity: O(Samples) evaluations plus ≤50 per bracket.
func FindRoots(f expr.Func, vp core.Viewport, scope core.Scope, opts Options) []core.Point {
	if f == nil {
		return nil
	}
	eval := func(x float64) float64 {
		return sampler.EvalAt(f, "x", x, scope)
	}

	return scanBrackets(eval, vp.XMin, vp.XMax, opts.normalized(), func(x float64) core.Point {
		return core.Point{X: x, Y: 0}
	})
}

// FindIntersections locates crossings of two standard curves by running
// the identical bracket scan on the difference d(x) = f1(x) − f2(x),
// each curve evaluated under its own scope. The reported point is
// (x, f1(x)) at the converged x — the first curve's own value, not an
// average. Complexity: O(Samples) evaluations plus ≤50 per bracket.
func FindIntersections(f1, f2 expr.Func, vp core.Viewport, scope1, scope2 core.Scope, opts Options) []core.Point {
	if f1 == nil || f2 == nil {
		return nil
	}
	diff := func(x float64) float64 {
		return sampler.EvalAt(f1, "x", x, scope1) - sampler.EvalAt(f2, "x", x, scope2)
	}

	return scanBrackets(diff, vp.XMin, vp.XMax, opts.normalized(), func(x float64) core.Point {
		return core.Point{X: x, Y: sampler.EvalAt(f1, "x", x, scope1)}
	})
}

// scanBrackets walks the domain at uniform intervals and reports one
// point per sign-change bracket. A non-finite sample on either side of
// an interval disqualifies it: poles flip sign without a zero, so a
// bracket never closes across one.
func scanBrackets(eval func(float64) float64, lo, hi float64, opts Options, report func(x float64) core.Point) []core.Point {
	step := (hi - lo) / float64(opts.Samples)
	prevX := lo
	prevV := eval(lo)

	var found []core.Point
	for i := 1; i <= opts.Samples; i++ {
		x := lo + float64(i)*step
		v := eval(x)
		if core.IsFinite(prevV) && core.IsFinite(v) && prevV*v < 0 {
			found = append(found, report(bisect(eval, prevX, x, prevV, opts.Tolerance)))
		}
		prevX, prevV = x, v
	}

	return found
}

// bisect halves [lo, hi] for up to 50 iterations, keeping the half
// whose endpoints still change sign. If tolerance is never reached the
// final midpoint is returned anyway as a best-effort result.
func bisect(eval func(float64) float64, lo, hi, fLo, tolerance float64) float64 {
	mid := (lo + hi) / 2
	for i := 0; i < maxBisections; i++ {
		mid = (lo + hi) / 2
		fMid := eval(mid)
		if math.Abs(fMid) < tolerance {
			return mid
		}
		if (fMid < 0) == (fLo < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}

	return mid
}
