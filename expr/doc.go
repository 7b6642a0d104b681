// Package expr turns mathematical expression text into pure numeric
// functions of a parameter scope.
//
// 🚀 Pipeline:
//
//	raw text ──Normalize──▶ ASCII text ──ParseExpr──▶ AST ──Compile──▶ Func
//
//   - Normalize rewrites unicode aliases (θ→theta, π→pi) and inserts the
//     multiplication signs that users habitually omit ("2x" → "2*x")
//   - ParseExpr builds a small tagged-union AST (literal, symbol, call,
//     binary, unary) via a precedence-climbing parser
//   - Compile folds the AST into a closure Func(core.Scope) float64 that
//     never panics: every numeric fault (domain error, unknown symbol)
//     degrades to NaN at the single evaluation
//
// ✨ Builtins:
//
//	A fixed, case-sensitive symbol table covers coordinates (x, y, t,
//	theta), constants (e, pi, E, PI, i, Infinity, NaN), trigonometric /
//	hyperbolic / inverse functions, logarithms, powers and roots,
//	rounding, min/max/mod, factorial, gamma and random. Any identifier
//	outside that table is a free variable — a slider candidate —
//	reported by FreeSymbols.
//
// ⚙️ Usage:
//
//	fn, err := expr.CompileString(expr.Normalize("a*sin(x)"))
//	if err != nil { ... }                       // ErrSyntax, ErrUnknownFunction, …
//	y := fn(core.Scope{"a": 2, "x": 1.57})      // ≈ 2
//
// Compiled functions are immutable and safe for concurrent use; each
// call reads only its scope argument.
package expr
