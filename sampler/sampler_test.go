package sampler_test

import (
	"math"
	"testing"

	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/curve"
	"github.com/isam10/curveplot/expr"
	"github.com/isam10/curveplot/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compiled(t *testing.T, src string) expr.Func {
	t.Helper()
	pe := curve.Parse(src)
	require.False(t, pe.Errored(), "parse %q: %s", src, pe.ParseError)
	require.NotNil(t, pe.Compiled)

	return pe.Compiled
}

// TestSampleStandard_SpacingAndCount: N intervals produce N+1 points at
// uniform spacing.
func TestSampleStandard_SpacingAndCount(t *testing.T) {
	f := compiled(t, "y=x^2")
	pts := sampler.SampleStandard(f, -1, 1, nil, sampler.StandardOptions{Samples: 4})

	require.Len(t, pts, 5)
	wantX := []float64{-1, -0.5, 0, 0.5, 1}
	for i, p := range pts {
		assert.InDelta(t, wantX[i], p.X, 1e-12)
		assert.InDelta(t, wantX[i]*wantX[i], p.Y, 1e-12)
	}
}

// TestSampleStandard_NonFiniteContainment: 1/x at x=0 yields a
// non-finite sentinel at that index only, and the loop never aborts.
func TestSampleStandard_NonFiniteContainment(t *testing.T) {
	f := compiled(t, "1/x")
	var pts []core.Point
	assert.NotPanics(t, func() {
		pts = sampler.SampleStandard(f, -1, 1, nil, sampler.StandardOptions{Samples: 2})
	})

	require.Len(t, pts, 3)
	assert.True(t, pts[0].Plottable(), "x=-1 is a plain sample")
	assert.False(t, core.IsFinite(pts[1].Y), "x=0 carries the sentinel")
	assert.InDelta(t, 0.0, pts[1].X, 1e-12, "sentinel keeps its x position")
	assert.True(t, pts[2].Plottable(), "x=1 is a plain sample")
}

// TestSampleStandard_DefaultBudget: zero options fall back to 2000
// intervals.
func TestSampleStandard_DefaultBudget(t *testing.T) {
	f := compiled(t, "y=x")
	pts := sampler.SampleStandard(f, 0, 1, nil, sampler.StandardOptions{})
	assert.Len(t, pts, sampler.DefaultStandardSamples+1)
}

// TestSampleStandard_ScopeInjection: slider values merge with the
// injected coordinate and the caller's map stays untouched.
func TestSampleStandard_ScopeInjection(t *testing.T) {
	f := compiled(t, "y=a*x")
	scope := core.Scope{"a": 3}
	pts := sampler.SampleStandard(f, 0, 2, scope, sampler.StandardOptions{Samples: 2})

	require.Len(t, pts, 3)
	assert.InDelta(t, 6.0, pts[2].Y, 1e-12)
	assert.NotContains(t, scope, "x", "sampler must not mutate the caller's scope")
}

// TestSamplePolar_UnitCircle: r=1 lands every sample on the unit
// circle, sweeping the default [0, 4π] range.
func TestSamplePolar_UnitCircle(t *testing.T) {
	f := compiled(t, "r=1")
	pts := sampler.SamplePolar(f, nil, sampler.PolarOptions{Samples: 8})

	require.Len(t, pts, 9)
	for _, p := range pts {
		require.True(t, p.Plottable())
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12)
	}
	// Default sweep: sample i covers theta = i/8 · 4π, so index 2 is π.
	assert.InDelta(t, -1.0, pts[2].X, 1e-9)
	assert.InDelta(t, 0.0, pts[2].Y, 1e-9)
}

// TestSamplePolar_SentinelKeepsIndex: a non-finite radius emits a
// sentinel point instead of skipping the sample, so the renderer sees
// the discontinuity at the right position.
func TestSamplePolar_SentinelKeepsIndex(t *testing.T) {
	f := compiled(t, "r=1/theta")
	pts := sampler.SamplePolar(f, nil, sampler.PolarOptions{ThetaMin: 0, ThetaMax: 1, Samples: 4})

	require.Len(t, pts, 5)
	assert.False(t, pts[0].Plottable(), "theta=0 divides by zero")
	for _, p := range pts[1:] {
		assert.True(t, p.Plottable())
	}
}

// TestSampleParametric_Circle: (cos t, sin t) over one turn.
func TestSampleParametric_Circle(t *testing.T) {
	pe := curve.Parse("(cos(t),sin(t))")
	require.False(t, pe.Errored())

	pts := sampler.SampleParametric(pe.CompiledX, pe.CompiledY, nil,
		sampler.ParametricOptions{TMin: 0, TMax: 2 * math.Pi, Samples: 100})

	require.Len(t, pts, 101)
	for _, p := range pts {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-9)
	}
}

// TestSampleParametric_DefaultRange: equal bounds select [-10, 10].
func TestSampleParametric_DefaultRange(t *testing.T) {
	pe := curve.Parse("(t,t)")
	require.False(t, pe.Errored())

	pts := sampler.SampleParametric(pe.CompiledX, pe.CompiledY, nil,
		sampler.ParametricOptions{Samples: 2})

	require.Len(t, pts, 3)
	assert.InDelta(t, sampler.DefaultParamMin, pts[0].X, 1e-12)
	assert.InDelta(t, sampler.DefaultParamMax, pts[2].X, 1e-12)
}

// TestEvalAt covers the single-sample primitive used by the analyzer.
func TestEvalAt(t *testing.T) {
	f := compiled(t, "y=x^2")
	assert.InDelta(t, 9.0, sampler.EvalAt(f, "x", 3, nil), 1e-12)
	assert.True(t, math.IsNaN(sampler.EvalAt(nil, "x", 3, nil)), "nil callable is the sentinel")
}

// TestTable evaluates at arbitrary coordinates for tabular consumers.
func TestTable(t *testing.T) {
	f := compiled(t, "y=2*x")
	rows := sampler.Table(f, "x", []float64{0, 1.5, -2}, nil)

	require.Len(t, rows, 3)
	assert.InDelta(t, 3.0, rows[1].Y, 1e-12)
	assert.InDelta(t, -4.0, rows[2].Y, 1e-12)
	assert.Nil(t, sampler.Table(nil, "x", []float64{1}, nil))
}

// TestNilCallablesDegradeEmpty: an errored ParsedExpression (nil
// callables) yields empty results everywhere, never a panic.
func TestNilCallablesDegradeEmpty(t *testing.T) {
	assert.Empty(t, sampler.SampleStandard(nil, -1, 1, nil, sampler.DefaultStandardOptions()))
	assert.Empty(t, sampler.SamplePolar(nil, nil, sampler.DefaultPolarOptions()))
	assert.Empty(t, sampler.SampleParametric(nil, nil, nil, sampler.DefaultParametricOptions()))
	assert.Empty(t, sampler.SampleDerivative(nil, -1, 1, nil, sampler.DefaultStandardOptions()))
	assert.Empty(t, sampler.MarchingSquares(nil, core.Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1}, nil, sampler.DefaultImplicitOptions()))
}
