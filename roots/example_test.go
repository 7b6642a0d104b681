package roots_test

import (
	"fmt"

	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/curve"
	"github.com/isam10/curveplot/roots"
)

// ExampleFindRoots locates the single zero of x - 2 across the visible
// window. The scan brackets the sign change and bisection refines it
// until |f(mid)| < 1e-10.
func ExampleFindRoots() {
	pe := curve.Parse("x-2")
	vp := core.Viewport{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

	for _, p := range roots.FindRoots(pe.Compiled, vp, nil, roots.DefaultOptions()) {
		fmt.Printf("root at x=%.4f\n", p.X)
	}
	// Output: root at x=2.0000
}

// ExampleFindIntersections crosses y=x with y=2-x: one intersection at
// (1, 1), reported with the first curve's own y value.
func ExampleFindIntersections() {
	f1 := curve.Parse("x")
	f2 := curve.Parse("2-x")
	vp := core.Viewport{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

	pts := roots.FindIntersections(f1.Compiled, f2.Compiled, vp, nil, nil, roots.DefaultOptions())
	for _, p := range pts {
		fmt.Printf("(%.4f, %.4f)\n", p.X, p.Y)
	}
	// Output: (1.0000, 1.0000)
}
