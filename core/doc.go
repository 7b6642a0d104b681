// Package core holds the fundamental value types shared by every other
// curveplot package: world-space points and segments, the visible
// viewport rectangle, and the parameter scope supplied by sliders.
//
// 🚀 What lives here?
//
//   - Point / Segment — plottable world-space geometry, where a
//     non-finite coordinate is a sentinel meaning "pen up, do not draw"
//   - Viewport — the visible {XMin..XMax}×{YMin..YMax} window
//   - Scope — named parameter bindings (slider values) merged into every
//     evaluation; coordinate variables are injected per sample by the
//     sampler, never by the caller
//
// ✨ Design rules:
//   - Pure value types, no behavior beyond cheap accessors — no locks,
//     no I/O, no hidden state
//   - Non-finite values (NaN, ±Inf) are first-class citizens: they flow
//     through unchanged and renderers interpret them as discontinuities
//
// Every other package (expr, curve, sampler, roots) depends on core and
// nothing in core depends back — the dependency graph stays a tree.
package core
