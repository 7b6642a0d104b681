package curve

import "github.com/isam10/curveplot/expr"

// Kind is the curve family an expression belongs to.
type Kind int

const (
	// Standard is y = f(x).
	Standard Kind = iota
	// Polar is r = f(theta), mapped to Cartesian by the sampler.
	Polar
	// Parametric is (x(t), y(t)).
	Parametric
	// Implicit is f(x, y) = 0, tessellated by marching squares.
	Implicit
)

// String returns the family name.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Polar:
		return "polar"
	case Parametric:
		return "parametric"
	case Implicit:
		return "implicit"
	}

	return "unknown"
}

// ParsedExpression is the immutable result of classifying and compiling
// one expression. Exactly one of Compiled or the (CompiledX, CompiledY)
// pair is populated, matching Kind — unless ParseError is set, in which
// case all callables are nil and every sampler call degrades to empty
// output.
type ParsedExpression struct {
	// Kind is the detected curve family. On parse failure it is
	// Standard by convention.
	Kind Kind
	// Compiled is the single callable for Standard (f(x)), Polar
	// (r(theta)) and Implicit (f(x,y), zero on the curve) kinds.
	Compiled expr.Func
	// CompiledX and CompiledY are the coordinate callables for the
	// Parametric kind.
	CompiledX, CompiledY expr.Func
	// FreeVariables are the slider candidates, sorted, never containing
	// the coordinate name(s) implied by Kind.
	FreeVariables []string
	// ParseError holds the failure message, empty on success.
	ParseError string
}

// Errored reports whether classification or compilation failed.
func (p ParsedExpression) Errored() bool { return p.ParseError != "" }

// Slider default bounds for a freshly discovered free variable.
const (
	// DefaultSliderValue is the initial value of a new slider.
	DefaultSliderValue = 1.0
	// DefaultSliderMin is the lower bound of a new slider's range.
	DefaultSliderMin = -10.0
	// DefaultSliderMax is the upper bound of a new slider's range.
	DefaultSliderMax = 10.0
	// DefaultSliderStep is the drag granularity of a new slider.
	DefaultSliderStep = 0.1
	// DefaultAnimationSpeed is the advance rate of an animated slider.
	DefaultAnimationSpeed = 1.0
)

// Slider is one adjustable parameter record owned by the caller's
// store. The animation loop itself (advancing Value and wrapping from
// Max back to Min) lives with the owner; this package only preserves
// the fields across re-parses.
type Slider struct {
	Name           string
	Value          float64
	Min, Max       float64
	Step           float64
	Animating      bool
	AnimationSpeed float64
}

// NewSlider returns a slider with the default value, range, step and
// animation settings for the given variable name.
func NewSlider(name string) Slider {
	return Slider{
		Name:           name,
		Value:          DefaultSliderValue,
		Min:            DefaultSliderMin,
		Max:            DefaultSliderMax,
		Step:           DefaultSliderStep,
		Animating:      false,
		AnimationSpeed: DefaultAnimationSpeed,
	}
}
