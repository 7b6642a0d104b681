package expr_test

import (
	"math"
	"testing"

	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evalTol = 1e-12

func mustCompile(t *testing.T, src string) expr.Func {
	t.Helper()
	fn, err := expr.CompileString(expr.Normalize(src))
	require.NoError(t, err, "compile %q", src)

	return fn
}

// TestCompile_Arithmetic evaluates representative expressions against
// known values.
func TestCompile_Arithmetic(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		scope core.Scope
		want  float64
	}{
		{"Precedence", "1+2*3", nil, 7},
		{"Parens", "(1+2)*3", nil, 9},
		{"PowerRightAssoc", "2^3^2", nil, 512},
		{"UnaryMinusPower", "-2^2", nil, -4},
		{"ImplicitMul", "2x", core.Scope{"x": 4}, 8},
		{"Mod", "7%3", nil, 1},
		{"Constants", "2pi", nil, 2 * math.Pi},
		{"Slider", "a*x+b", core.Scope{"a": 2, "x": 3, "b": 1}, 7},
		{"NestedCall", "sqrt(pow(3,2)+pow(4,2))", nil, 5},
		{"MinMax", "min(2,3)+max(2,3)", nil, 5},
		{"Factorial", "factorial(5)", nil, 120},
		{"Gamma", "gamma(5)", nil, 24},
		{"NthRootOddNegative", "nthRoot(-8,3)", nil, -2},
		{"Sign", "sign(-7)", nil, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fn := mustCompile(t, tc.src)
			assert.InDelta(t, tc.want, fn(tc.scope), evalTol)
		})
	}
}

// TestCompile_NumericFaults: evaluation never panics; faults become
// non-finite values that flow through as sentinels.
func TestCompile_NumericFaults(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		scope core.Scope
		check func(t *testing.T, v float64)
	}{
		{"DivByZero", "1/x", core.Scope{"x": 0},
			func(t *testing.T, v float64) { assert.True(t, math.IsInf(v, 1)) }},
		{"ZeroOverZero", "x/x", core.Scope{"x": 0},
			func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) }},
		{"SqrtNegative", "sqrt(0-1)", nil,
			func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) }},
		{"LogNegative", "log(0-1)", nil,
			func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) }},
		{"UnboundSymbol", "a+1", nil,
			func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) }},
		{"ImaginaryUnit", "i", nil,
			func(t *testing.T, v float64) { assert.True(t, math.IsNaN(v)) }},
		{"Infinity", "Infinity", nil,
			func(t *testing.T, v float64) { assert.True(t, math.IsInf(v, 1)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fn := mustCompile(t, tc.src)
			assert.NotPanics(t, func() { tc.check(t, fn(tc.scope)) })
		})
	}
}

// TestCompile_Errors checks structural compile failures.
func TestCompile_Errors(t *testing.T) {
	_, err := expr.CompileString("frob(x)")
	assert.ErrorIs(t, err, expr.ErrUnknownFunction)

	_, err = expr.CompileString("sin(x, 2)")
	assert.ErrorIs(t, err, expr.ErrArity)

	_, err = expr.CompileString("pow(2)")
	assert.ErrorIs(t, err, expr.ErrArity)
}

// TestCompile_ScopeCannotShadowConstants: pi stays pi even if a caller
// puts "pi" in the scope.
func TestCompile_ScopeCannotShadowConstants(t *testing.T) {
	fn := mustCompile(t, "pi")
	assert.InDelta(t, math.Pi, fn(core.Scope{"pi": 3}), evalTol)
}

// TestCompile_PureAcrossCalls: a compiled function is reusable and
// depends only on its scope argument.
func TestCompile_PureAcrossCalls(t *testing.T) {
	fn := mustCompile(t, "a*x")
	assert.InDelta(t, 6.0, fn(core.Scope{"a": 2, "x": 3}), evalTol)
	assert.InDelta(t, 20.0, fn(core.Scope{"a": 4, "x": 5}), evalTol)
	assert.InDelta(t, 6.0, fn(core.Scope{"a": 2, "x": 3}), evalTol)
}
