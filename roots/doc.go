// Package roots discovers zeros and curve intersections by numeric
// bisection over a viewport's x-extent.
//
// 🚀 Algorithm shape (shared by both operations):
//
//  1. Scan the domain at a uniform sample count, remembering the
//     previous sample's value
//  2. Never close a bracket across a non-finite sample — poles like
//     1/x flip sign through ±Inf without a zero in between
//  3. On a strict sign change (product < 0), bisect for up to 50
//     iterations; stop early once |f(mid)| < tolerance
//  4. If the iteration cap elapses, keep the final midpoint as a
//     best-effort result rather than discarding the bracket
//
// Each sign-change interval yields at most one root: closely spaced
// multiple roots inside a single scan interval merge — a resolution
// limitation governed by Options.Samples, not a correctness bug.
//
// ✨ FindIntersections runs the identical scan on the difference
// d(x) = f1(x) − f2(x) and reports (x, f1(x)) at the converged x, using
// the first curve's own function for the y value.
//
// ⚙️ Usage:
//
//	pts := roots.FindRoots(pe.Compiled, vp, scope, roots.DefaultOptions())
//
// Both operations are pure: no shared state, no I/O, bounded work of
// O(Samples) plus 50 iterations per bracket — always return, never fail.
package roots
