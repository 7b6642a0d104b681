// Package curveplot is the symbolic-to-numeric expression engine behind
// an interactive 2-D graphing tool: type an expression, get plottable
// geometry back.
//
// 🚀 What does curveplot do?
//
//	A pure, dependency-light engine that brings together:
//		• Normalization: unicode aliases (θ, π) & implicit multiplication
//		• Classification: standard y=f(x), polar r=f(θ), parametric
//		  (x(t), y(t)) and implicit f(x,y)=0 — first matching rule wins
//		• Compilation: expression text → pure numeric function of a scope
//		• Sampling: uniform 1-D points, polar/parametric curves, and
//		  marching-squares contour segments for implicit curves
//		• Analysis: root and intersection discovery by bracketed bisection
//
// ✨ Why these design rules?
//
//   - Nothing throws across a boundary — parse failures become a message
//     on the record, numeric faults become non-finite sentinel points
//   - Every operation is a pure function of its explicit inputs with a
//     fixed work budget, so calls are trivially memoizable and safe from
//     any number of call sites without coordination
//   - Sliders: free variables are extracted for the caller, and slider
//     records reconcile by name across re-parses
//
// Everything is organized under five subpackages:
//
//	core/    — Point, Segment, Viewport, Scope & the sentinel contract
//	expr/    — normalizer, AST, parser, compiler, builtin table
//	curve/   — classifier producing ParsedExpression + slider records
//	sampler/ — point/segment generation, derivatives, tangent lines
//	roots/   — bisection root & intersection finding
//
// Quick ASCII example:
//
//	"x^2+y^2=1"  ──curve.Parse──▶  implicit f(x,y) = (x²+y²) − 1
//	             ──sampler.MarchingSquares──▶  ~circle as segments
//
// Rendering points to pixels, UI widgets, debouncing and persistence
// are external collaborators — they consume this engine's outputs
// through plain value types and never reach back inside.
package curveplot
