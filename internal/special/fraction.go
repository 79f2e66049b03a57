package special

import "math"

// tiny floors near-zero denominators in the Lentz recurrence to avoid
// division blow-up.
const tiny = 1e-30

// betaContinuedFraction evaluates the continued fraction of the incomplete
// beta integral at (a, b, x) using the modified Lentz method, returning the
// converged value and the iteration at which convergence was declared.
//
// Convergence is declared once the per-iteration ratio delta satisfies
// |delta - 1| < p.Epsilon and at least p.MinIters iterations ran. If
// p.MaxIters is reached first, the best approximant so far is returned
// without signalling; callers accept silent precision degradation as the
// contract.
//
// The caller must have handled x == 0 and x == 1; those never reach this
// routine. Non-finite a or b propagate NaN through the recurrence.
func betaContinuedFraction(a, b, x float64, p Precision) (float64, int) {
	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	iters := 0
	for m := 1; m <= p.MaxIters; m++ {
		iters = m
		fm := float64(m)
		m2 := 2 * fm

		// Even step: coefficient a_{2m}.
		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		// Odd step: coefficient a_{2m+1}.
		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d

		delta := d * c
		h *= delta

		if math.Abs(delta-1) < p.Epsilon && m >= p.MinIters {
			break
		}
	}

	return h, iters
}
