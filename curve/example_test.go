package curve_test

import (
	"fmt"

	"github.com/isam10/curveplot/curve"
)

// ExampleParse demonstrates classification of the four curve families
// from raw user text, unicode and implicit multiplication included.
func ExampleParse() {
	for _, text := range []string{
		"y=x^2",
		"r=θ",
		"(cos(t),sin(t))",
		"x^2+y^2=1",
	} {
		pe := curve.Parse(text)
		fmt.Printf("%s: %s\n", text, pe.Kind)
	}
	// Output:
	// y=x^2: standard
	// r=θ: polar
	// (cos(t),sin(t)): parametric
	// x^2+y^2=1: implicit
}

// ExampleParse_freeVariables shows slider-candidate extraction: every
// symbol outside the builtin table becomes a slider.
func ExampleParse_freeVariables() {
	pe := curve.Parse("a*sin(k*x)+b")
	fmt.Println(pe.FreeVariables)
	// Output: [a b k]
}

// ExampleReconcileSliders shows how an existing slider survives a
// re-parse while a new variable gets defaults.
func ExampleReconcileSliders() {
	tuned := curve.NewSlider("a")
	tuned.Value = 4.2

	next := curve.Parse("a*x+c")
	sliders := curve.ReconcileSliders(next.FreeVariables, []curve.Slider{tuned})
	for _, s := range sliders {
		fmt.Printf("%s=%.1f\n", s.Name, s.Value)
	}
	// Output:
	// a=4.2
	// c=1.0
}
