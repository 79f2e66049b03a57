package special

import "math"

// Digamma returns the logarithmic derivative of the Gamma function,
// psi(x) = d/dx lgamma(x). It backs the gradient of the Lgamma tensor
// operation.
//
// Negative arguments use the reflection formula
// psi(1-x) - psi(x) = pi / tan(pi x); non-positive integers are poles and
// return NaN.
func Digamma(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, -1) {
		return math.NaN()
	}

	if x <= 0 {
		if x == math.Trunc(x) {
			return math.NaN()
		}
		return Digamma(1-x) - math.Pi/math.Tan(math.Pi*x)
	}

	// Recurrence psi(x) = psi(x+1) - 1/x until the asymptotic expansion
	// is accurate. At x >= 10 the truncated Bernoulli series below is
	// good to ~2e-14 absolute.
	result := 0.0
	for x < 10 {
		result -= 1 / x
		x++
	}

	inv := 1 / x
	inv2 := inv * inv
	result += math.Log(x) - 0.5*inv -
		inv2*(1.0/12-inv2*(1.0/120-inv2*(1.0/252-inv2*(1.0/240-inv2/132))))
	return result
}
