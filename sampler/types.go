package sampler

import (
	"math"

	"github.com/isam10/curveplot/core"
)

// Default sampling budgets. Zero or negative option fields fall back to
// these inside each operation.
const (
	// DefaultStandardSamples is the interval count for standard curves.
	DefaultStandardSamples = 2000
	// DefaultPolarSamples is the interval count for polar curves.
	DefaultPolarSamples = 3000
	// DefaultParametricSamples is the interval count for parametric curves.
	DefaultParametricSamples = 2000
	// DefaultGridResolution is the marching-squares cell count per axis.
	DefaultGridResolution = 160
	// DefaultParamMin / DefaultParamMax bound the default t range.
	DefaultParamMin = -10.0
	// DefaultParamMax is the upper end of the default t range.
	DefaultParamMax = 10.0

	// derivativeStep is the fixed central-difference step h.
	derivativeStep = 1e-7
	// interpEpsilon guards edge interpolation: corner values closer than
	// this use the edge midpoint instead of an unstable division.
	interpEpsilon = 1e-12
)

// DefaultThetaMax is the upper end of the default polar angle range,
// two full turns so curves like r = theta/2 close visibly.
var DefaultThetaMax = 4 * math.Pi

// StandardOptions tunes 1-D sampling for standard curves and
// derivatives.
type StandardOptions struct {
	// Samples is the interval count N; the output holds N+1 points.
	Samples int
}

// DefaultStandardOptions returns the standard sampling defaults.
func DefaultStandardOptions() StandardOptions {
	return StandardOptions{Samples: DefaultStandardSamples}
}

// PolarOptions tunes polar sampling.
type PolarOptions struct {
	// ThetaMin and ThetaMax bound the angle sweep. Equal values select
	// the default [0, 4π] range.
	ThetaMin, ThetaMax float64
	// Samples is the interval count.
	Samples int
}

// DefaultPolarOptions returns the polar sampling defaults.
func DefaultPolarOptions() PolarOptions {
	return PolarOptions{ThetaMin: 0, ThetaMax: DefaultThetaMax, Samples: DefaultPolarSamples}
}

// ParametricOptions tunes parametric sampling.
type ParametricOptions struct {
	// TMin and TMax bound the parameter range. Equal values select the
	// default [-10, 10] range.
	TMin, TMax float64
	// Samples is the interval count.
	Samples int
}

// DefaultParametricOptions returns the parametric sampling defaults.
func DefaultParametricOptions() ParametricOptions {
	return ParametricOptions{TMin: DefaultParamMin, TMax: DefaultParamMax, Samples: DefaultParametricSamples}
}

// ImplicitOptions tunes marching-squares tessellation.
type ImplicitOptions struct {
	// Resolution is the cell count R per axis; the value grid is
	// (R+1)×(R+1).
	Resolution int
}

// DefaultImplicitOptions returns the tessellation defaults.
func DefaultImplicitOptions() ImplicitOptions {
	return ImplicitOptions{Resolution: DefaultGridResolution}
}

// Tangent is a tangent line clipped to the viewport's x-extent plus its
// contact point on the curve.
type Tangent struct {
	// Start and End are the clipped line endpoints at XMin and XMax.
	Start, End core.Point
	// Contact is (a, f(a)), the point where the line touches the curve.
	Contact core.Point
}
