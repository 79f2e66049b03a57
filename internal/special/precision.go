package special

// Precision controls the continued-fraction evaluation of the regularized
// incomplete beta function. It is an immutable per-call value; betagrad has
// no module-level mutable defaults.
//
//   - Epsilon: convergence tolerance on the per-iteration ratio.
//   - MinIters: minimum iterations before convergence may be declared,
//     guarding against an accidental early plateau of the recurrence.
//   - MaxIters: hard bound on iterations. Reaching it is not an error: the
//     best available approximant is returned (documented precision/latency
//     trade-off, see RegIncompleteBeta).
type Precision struct {
	Epsilon  float64
	MinIters int
	MaxIters int
}

// DefaultPrecision returns the default convergence parameters:
// epsilon 1e-14, at least 3 and at most 500 iterations.
func DefaultPrecision() Precision {
	return Precision{
		Epsilon:  1e-14,
		MinIters: 3,
		MaxIters: 500,
	}
}

// withDefaults fills unset (zero) fields from DefaultPrecision.
func (p Precision) withDefaults() Precision {
	def := DefaultPrecision()
	if p.Epsilon == 0 {
		p.Epsilon = def.Epsilon
	}
	if p.MinIters == 0 {
		p.MinIters = def.MinIters
	}
	if p.MaxIters == 0 {
		p.MaxIters = def.MaxIters
	}
	return p
}
