package expr

import (
	"math"
	"math/rand"
)

// coordinateNames are the per-kind sample variables injected by the
// sampler. They live in the builtin table so they are never reported as
// free variables, but their values always come from the evaluation
// scope, not from a constant.
var coordinateNames = map[string]struct{}{
	"x":     {},
	"y":     {},
	"t":     {},
	"theta": {},
}

// builtinConstants resolve before the scope, so a slider can never
// shadow pi. The imaginary unit "i" is reserved but has no real value;
// it evaluates to NaN.
var builtinConstants = map[string]float64{
	"e":        math.E,
	"E":        math.E,
	"pi":       math.Pi,
	"PI":       math.Pi,
	"i":        math.NaN(),
	"Infinity": math.Inf(1),
	"NaN":      math.NaN(),
}

// builtinFunc is one entry of the fixed function table.
type builtinFunc struct {
	arity int
	fn    func(args []float64) float64
}

func fn1(f func(float64) float64) builtinFunc {
	return builtinFunc{arity: 1, fn: func(a []float64) float64 { return f(a[0]) }}
}

func fn2(f func(float64, float64) float64) builtinFunc {
	return builtinFunc{arity: 2, fn: func(a []float64) float64 { return f(a[0], a[1]) }}
}

// builtinFuncs is the fixed, case-sensitive function table. Every entry
// is total over float64: domain errors surface as NaN or ±Inf per
// math-package semantics, never as a panic.
var builtinFuncs = map[string]builtinFunc{
	// Trigonometric and inverse.
	"sin":  fn1(math.Sin),
	"cos":  fn1(math.Cos),
	"tan":  fn1(math.Tan),
	"asin": fn1(math.Asin),
	"acos": fn1(math.Acos),
	"atan": fn1(math.Atan),
	// Hyperbolic and inverse.
	"sinh":  fn1(math.Sinh),
	"cosh":  fn1(math.Cosh),
	"tanh":  fn1(math.Tanh),
	"asinh": fn1(math.Asinh),
	"acosh": fn1(math.Acosh),
	"atanh": fn1(math.Atanh),
	// Logarithms and exponential. log and ln are both the natural log.
	"log":   fn1(math.Log),
	"ln":    fn1(math.Log),
	"log2":  fn1(math.Log2),
	"log10": fn1(math.Log10),
	"exp":   fn1(math.Exp),
	// Powers and roots.
	"sqrt":    fn1(math.Sqrt),
	"cbrt":    fn1(math.Cbrt),
	"pow":     fn2(math.Pow),
	"nthRoot": fn2(nthRoot),
	// Rounding and magnitude.
	"abs":   fn1(math.Abs),
	"ceil":  fn1(math.Ceil),
	"floor": fn1(math.Floor),
	"round": fn1(math.Round),
	"sign":  fn1(sign),
	// Misc numeric.
	"min":       fn2(math.Min),
	"max":       fn2(math.Max),
	"mod":       fn2(math.Mod),
	"factorial": fn1(factorial),
	"gamma":     fn1(math.Gamma),
	"random":    {arity: 0, fn: func([]float64) float64 { return rand.Float64() }},
}

// IsBuiltin reports whether name belongs to the fixed builtin symbol
// table (coordinates, constants, or functions). Identifiers outside the
// table are free variables — slider candidates.
func IsBuiltin(name string) bool {
	if _, ok := coordinateNames[name]; ok {
		return true
	}
	if _, ok := builtinConstants[name]; ok {
		return true
	}
	_, ok := builtinFuncs[name]

	return ok
}

// nthRoot computes the n-th root of x, extending math.Pow to negative
// radicands with odd integer degrees: nthRoot(-8, 3) = -2.
func nthRoot(x, n float64) float64 {
	if x < 0 && n == math.Trunc(n) && math.Mod(n, 2) != 0 {
		return -math.Pow(-x, 1/n)
	}

	return math.Pow(x, 1/n)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return x // preserves ±0 and NaN
}

// factorial generalizes n! through the gamma function, so non-integer
// arguments work and negative integers yield ±Inf.
func factorial(x float64) float64 {
	return math.Gamma(x + 1)
}
