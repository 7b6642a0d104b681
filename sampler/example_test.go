package sampler_test

import (
	"fmt"

	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/curve"
	"github.com/isam10/curveplot/sampler"
)

// ExampleSampleStandard samples a parabola at a coarse budget. The
// sampler injects x itself; the scope only carries slider values.
func ExampleSampleStandard() {
	pe := curve.Parse("y=x^2")
	pts := sampler.SampleStandard(pe.Compiled, -2, 2, nil, sampler.StandardOptions{Samples: 4})
	for _, p := range pts {
		fmt.Printf("(%g, %g)\n", p.X, p.Y)
	}
	// Output:
	// (-2, 4)
	// (-1, 1)
	// (0, 0)
	// (1, 1)
	// (2, 4)
}

// ExampleTangentAt computes the tangent of x² at x=1 — the line
// y = 2x − 1, clipped to the viewport's x-extent.
func ExampleTangentAt() {
	pe := curve.Parse("y=x^2")
	vp := core.Viewport{XMin: -2, XMax: 2, YMin: -4, YMax: 4}

	tan, ok := sampler.TangentAt(pe.Compiled, 1, vp, nil)
	if !ok {
		fmt.Println("no tangent")

		return
	}
	fmt.Printf("contact (%g, %g)\n", tan.Contact.X, tan.Contact.Y)
	// Output: contact (1, 1)
}
