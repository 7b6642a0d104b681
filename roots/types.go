package roots

// Default search budgets.
const (
	// DefaultSamples is the uniform scan interval count.
	DefaultSamples = 400
	// DefaultTolerance is the |f(mid)| convergence threshold.
	DefaultTolerance = 1e-10
	// maxBisections caps the refinement loop per bracket.
	maxBisections = 50
)

// Options tunes the bracket scan. Zero or negative fields fall back to
// the defaults.
type Options struct {
	// Samples is the number of uniform scan intervals across the
	// viewport's x-extent.
	Samples int
	// Tolerance is the convergence threshold on |f(mid)|.
	Tolerance float64
}

// DefaultOptions returns the documented search defaults:
// 400 samples, 1e-10 tolerance.
func DefaultOptions() Options {
	return Options{Samples: DefaultSamples, Tolerance: DefaultTolerance}
}

func (o Options) normalized() Options {
	if o.Samples <= 0 {
		o.Samples = DefaultSamples
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}

	return o
}
