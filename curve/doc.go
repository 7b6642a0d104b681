// Package curve classifies expression text into one of four curve
// families and compiles it into callable numeric form.
//
// 🚀 Classification is a strict, ordered rule chain — first match wins:
//
//  1. "r = <rhs>"                          → Polar   (r as a function of theta)
//  2. "(<x(t)>, <y(t)>)"                   → Parametric (one top-level comma)
//  3. "<lhs> = <rhs>"                      → Standard when lhs is exactly "y"
//     and rhs does not mention y; otherwise Implicit on (lhs) - (rhs)
//  4. bare expression                      → Implicit when it mentions y,
//     Standard otherwise
//
// ✨ Contract:
//
//   - Parse never fails: malformed text yields a ParsedExpression whose
//     ParseError carries the message and whose callables are nil, so
//     downstream samplers degrade to empty output
//   - A ParsedExpression is immutable; on every text change the caller
//     builds a fresh one and discards the old record wholesale
//   - FreeVariables lists the slider candidates: every symbol outside
//     the fixed builtin table, always excluding the coordinate name(s)
//     implied by the kind
//
// ⚙️ Usage:
//
//	pe := curve.Parse("a*x + b")
//	if pe.Errored() { ... }
//	sliders := curve.ReconcileSliders(pe.FreeVariables, prevSliders)
//
// ReconcileSliders keeps existing slider records (value, range,
// animation state) for variables that survive a re-parse and creates
// defaults for new ones — keyed by name, never by position.
package curve
