// Package sampler turns compiled expressions into plottable geometry:
// point sequences for standard, polar and parametric curves, and
// unordered segment lists for implicit curves via marching squares.
//
// 🚀 Operations:
//
//   - SampleStandard    — N+1 equally spaced (x, f(x)) points
//   - SamplePolar       — r(θ) mapped to Cartesian over an angle range
//   - SampleParametric  — (x(t), y(t)) over a t range
//   - MarchingSquares   — zero-contour segments of f(x,y) over the viewport
//   - SampleDerivative  — central-difference f′ sampled like Standard
//   - TangentAt         — tangent line at an anchor, clipped to the viewport
//   - EvalAt / Table    — single-sample and tabular safe evaluation
//
// ✨ The safe-evaluation contract:
//
//	Every per-sample evaluation either yields a finite number or the
//	non-finite sentinel (NaN/±Inf) — a fault at one sample never aborts
//	the surrounding loop. Renderers interpret sentinel points as
//	"pen up". A nil callable (an errored ParsedExpression) degrades to
//	empty output.
//
// The sampler owns coordinate injection: it merges the caller's scope
// with the per-sample coordinate variable (x, theta, t, or the x/y
// pair), so callers must never pre-supply coordinates themselves.
//
// Performance: 1-D sampling is O(N); implicit tessellation is O(R²)
// for grid resolution R. Those knobs (StandardOptions.Samples,
// ImplicitOptions.Resolution, …) are the latency dials of the engine —
// every call is bounded and always returns.
package sampler
